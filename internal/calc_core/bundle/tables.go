package bundle

import "github.com/vaporcore/if97/internal/calc_core/poly"

// Term lists are transcribed from the IAPWS-IF97 (1997, revised 2007)
// published tables, cross-checked against original_source/if97.py's term
// ordering convention: each list is sorted ascending by (M, N) as poly.Eval
// requires.

var region1Terms = []poly.Term{
	{M: 0, N: -2, C: 0.14632971213167},
	{M: 0, N: -1, C: -0.84548187169114},
	{M: 0, N: 0, C: -0.37563603672040e1},
	{M: 0, N: 1, C: 0.33855169168385e1},
	{M: 0, N: 2, C: -0.95791963387872},
	{M: 0, N: 3, C: 0.15772038513228},
	{M: 0, N: 4, C: -0.16616417199501e-1},
	{M: 0, N: 5, C: 0.81214629983568e-3},
	{M: 1, N: -9, C: 0.28319080123804e-3},
	{M: 1, N: -7, C: -0.60706301565874e-3},
	{M: 1, N: -1, C: -0.18990068218419e-1},
	{M: 1, N: 0, C: -0.32529748770505e-1},
	{M: 1, N: 1, C: -0.21841717175414e-1},
	{M: 1, N: 3, C: -0.52838357969930e-4},
	{M: 2, N: -3, C: -0.47184321073267e-3},
	{M: 2, N: 0, C: -0.30001780793026e-3},
	{M: 2, N: 1, C: 0.47661393906987e-4},
	{M: 2, N: 3, C: -0.44141845330846e-5},
	{M: 2, N: 17, C: -0.72694996297594e-15},
	{M: 3, N: -4, C: -0.31679644845054e-4},
	{M: 3, N: 0, C: -0.28270797985312e-5},
	{M: 3, N: 6, C: -0.85205128120103e-9},
	{M: 4, N: -5, C: -0.22425281908000e-5},
	{M: 4, N: -2, C: -0.65171222895601e-6},
	{M: 4, N: 10, C: -0.14341729937924e-12},
	{M: 5, N: -8, C: -0.40516996860117e-6},
	{M: 8, N: -11, C: -0.12734301741641e-8},
	{M: 8, N: -6, C: -0.17424871230634e-9},
	{M: 21, N: -29, C: -0.68762131295531e-18},
	{M: 23, N: -31, C: 0.14478307828521e-19},
	{M: 29, N: -38, C: 0.26335781662795e-22},
	{M: 30, N: -39, C: -0.11947622640071e-22},
	{M: 31, N: -40, C: 0.18228094581404e-23},
	{M: 32, N: -41, C: -0.93537087292458e-25},
}

var backwardTh1Terms = []poly.Term{
	{M: 0, N: 0, C: -0.23872489924521e3},
	{M: 0, N: 1, C: 0.40421188637945e3},
	{M: 0, N: 2, C: 0.11349746881718e3},
	{M: 0, N: 6, C: -0.58457616048039e1},
	{M: 0, N: 22, C: -0.15285482413140e-3},
	{M: 0, N: 32, C: -0.10866707695377e-5},
	{M: 1, N: 0, C: -0.13391744872602e2},
	{M: 1, N: 1, C: 0.43211039183559e2},
	{M: 1, N: 2, C: -0.54010067170506e2},
	{M: 1, N: 3, C: 0.30535892203916e2},
	{M: 1, N: 4, C: -0.65964749423638e1},
	{M: 1, N: 10, C: 0.93965400878363e-2},
	{M: 1, N: 32, C: 0.11573647505340e-6},
	{M: 2, N: 10, C: -0.25858641282073e-4},
	{M: 2, N: 32, C: -0.40644363084799e-8},
	{M: 3, N: 10, C: 0.66456186191635e-7},
	{M: 3, N: 32, C: 0.80670734103027e-10},
	{M: 4, N: 32, C: -0.93477771213947e-12},
	{M: 5, N: 32, C: 0.58265442020601e-14},
	{M: 6, N: 32, C: -0.15020185953503e-16},
}

var backwardTs1Terms = []poly.Term{
	{M: 0, N: 0, C: 0.17478268058307e3},
	{M: 0, N: 1, C: 0.34806930892873e2},
	{M: 0, N: 2, C: 0.65292584978455e1},
	{M: 0, N: 3, C: 0.33039981775489},
	{M: 0, N: 11, C: -0.19281382923196e-6},
	{M: 0, N: 31, C: -0.24909197244573e-22},
	{M: 1, N: 0, C: -0.26107636489332},
	{M: 1, N: 1, C: 0.22592965981586},
	{M: 1, N: 2, C: -0.64256463395226e-1},
	{M: 1, N: 3, C: 0.78876289270526e-2},
	{M: 1, N: 12, C: 0.35672110607366e-9},
	{M: 1, N: 31, C: 0.17332496994895e-23},
	{M: 2, N: 0, C: 0.56608900654837e-3},
	{M: 2, N: 1, C: -0.32635483139717e-3},
	{M: 2, N: 2, C: 0.44778286690632e-4},
	{M: 2, N: 9, C: -0.51322156908507e-9},
	{M: 2, N: 31, C: -0.42522657042207e-25},
	{M: 3, N: 10, C: 0.26400441360689e-12},
	{M: 3, N: 32, C: 0.78124600459723e-28},
	{M: 4, N: 32, C: -0.30732199732910e-30},
}

// region2IdealTerms has no x (pi) dependence: the ideal-gas part of region
// 2's Gibbs energy adds ln(pi) separately (see region2.Eval), so
// every term here carries M=0.
var region2IdealTerms = []poly.Term{
	{M: 0, N: -5, C: -0.56087911283020e-2},
	{M: 0, N: -4, C: 0.71452738081455e-1},
	{M: 0, N: -3, C: -0.40710498223928},
	{M: 0, N: -2, C: 0.14240819171444e1},
	{M: 0, N: -1, C: -0.43839511319450e1},
	{M: 0, N: 0, C: -0.96927686500217e1},
	{M: 0, N: 1, C: 0.10086655968018e2},
	{M: 0, N: 2, C: -0.28408632460772},
	{M: 0, N: 3, C: 0.21268463753307e-1},
}

var region2ResidualTerms = []poly.Term{
	{M: 1, N: 0, C: -0.17731742473213e-2},
	{M: 1, N: 1, C: -0.17834862292358e-1},
	{M: 1, N: 2, C: -0.45996013696365e-1},
	{M: 1, N: 3, C: -0.57581259083432e-1},
	{M: 1, N: 6, C: -0.50325278727930e-1},
	{M: 2, N: 1, C: -0.33032641670203e-4},
	{M: 2, N: 2, C: -0.18948987516315e-3},
	{M: 2, N: 4, C: -0.39392777243355e-2},
	{M: 2, N: 7, C: -0.43797295650573e-1},
	{M: 2, N: 36, C: -0.26674547914087e-4},
	{M: 3, N: 0, C: 0.20481737692309e-7},
	{M: 3, N: 1, C: 0.43870667284435e-6},
	{M: 3, N: 3, C: -0.32277677238570e-4},
	{M: 3, N: 6, C: -0.15033924542148e-2},
	{M: 3, N: 35, C: -0.40668253562649e-1},
	{M: 4, N: 1, C: -0.78847309559367e-9},
	{M: 4, N: 2, C: 0.12790717852285e-7},
	{M: 4, N: 11, C: 0.48225372718507e-6},
	{M: 5, N: 1, C: 0.22922076337661e-5},
	{M: 6, N: 0, C: -0.16714766451061e-10},
	{M: 6, N: 11, C: -0.21171472321355e-2},
	{M: 6, N: 31, C: -0.23895741934104e2},
	{M: 7, N: 0, C: -0.59059564324270e-17},
	{M: 7, N: 1, C: -0.12621808899101e-5},
	{M: 7, N: 12, C: -0.38946842435739e-1},
	{M: 8, N: 6, C: 0.11256211360459e-10},
	{M: 8, N: 18, C: -0.82311340897998e1},
	{M: 9, N: 0, C: 0.19809712802088e-7},
	{M: 9, N: 1, C: 0.10406965210174e-18},
	{M: 9, N: 2, C: -0.10234747095929e-12},
	{M: 9, N: 3, C: -0.10018179379511e-8},
	{M: 10, N: 8, C: -0.80882908646985e-10},
	{M: 10, N: 24, C: 0.10693031879409},
	{M: 10, N: 25, C: -0.33662250574171},
	{M: 14, N: 16, C: 0.89185845355421e-24},
	{M: 14, N: 24, C: -0.42002467698208e-5},
	{M: 14, N: 28, C: 0.30629316876232e-12},
	{M: 16, N: 2, C: -0.59056029685639e-25},
	{M: 16, N: 28, C: 0.37826947613457e-5},
	{M: 16, N: 32, C: -0.12768608934681e-14},
	{M: 18, N: 3, C: 0.73087610595061e-28},
	{M: 18, N: 18, C: 0.55414715350778e-16},
	{M: 18, N: 24, C: -0.94369707241210e-6},
}

// backwardTh2aTerms is region 2's backward T(p,h) correlation for the 2a
// sub-region (p <= 4 MPa).
var backwardTh2aTerms = []poly.Term{
	{M: 0, N: 0, C: 0.10898952318288e4},
	{M: 0, N: 1, C: 0.84951654495535e3},
	{M: 0, N: 2, C: -0.10781748091826e3},
	{M: 0, N: 3, C: 0.33153654801263e2},
	{M: 0, N: 7, C: -0.74232016790248e1},
	{M: 0, N: 20, C: 0.11765048724356e2},
	{M: 1, N: 0, C: 0.18445749355790e1},
	{M: 1, N: 1, C: -0.41792700549624e1},
	{M: 1, N: 2, C: 0.62478196935812e1},
	{M: 1, N: 3, C: -0.17344563108114e2},
	{M: 1, N: 7, C: -0.20058176862096e3},
	{M: 1, N: 9, C: 0.27196065473796e3},
	{M: 1, N: 11, C: -0.45511318285818e3},
	{M: 1, N: 18, C: 0.30919688604755e4},
	{M: 1, N: 44, C: 0.25226640357872e6},
	{M: 2, N: 0, C: -0.61707422868339e-2},
	{M: 2, N: 2, C: -0.31078046629583},
	{M: 2, N: 7, C: 0.11670873077107e2},
	{M: 2, N: 36, C: 0.12812798404046e9},
	{M: 2, N: 38, C: -0.98554909623276e9},
	{M: 2, N: 40, C: 0.28224358912450e10},
	{M: 2, N: 42, C: -0.35948971410703e10},
	{M: 2, N: 44, C: 0.17227349913197e10},
	{M: 3, N: 24, C: -0.13551334240775e5},
	{M: 3, N: 44, C: 0.12848734664650e8},
	{M: 4, N: 12, C: 0.13865724283226e1},
	{M: 4, N: 32, C: 0.23598832556514e6},
	{M: 4, N: 44, C: -0.13105236545054e8},
	{M: 5, N: 32, C: 0.73999835474766e4},
	{M: 5, N: 36, C: -0.55196697030060e6},
	{M: 5, N: 42, C: 0.37154085996233e7},
	{M: 6, N: 34, C: 0.19127729239660e5},
	{M: 6, N: 44, C: -0.41535164835634e6},
	{M: 7, N: 28, C: -0.62459855192507e2},
}

// backwardTh2bTerms is the 2b sub-region (p > 4 MPa, h at or above the
// B2bc boundary enthalpy; see backward.SubFromHP).
var backwardTh2bTerms = []poly.Term{
	{M: 0, N: 0, C: 0.14895041079516e4},
	{M: 0, N: 1, C: 0.74307798314034e3},
	{M: 0, N: 2, C: -0.97708318797837e2},
	{M: 0, N: 12, C: 0.24742464705674e1},
	{M: 0, N: 18, C: -0.63281320016026},
	{M: 0, N: 24, C: 0.11385952129658e1},
	{M: 0, N: 28, C: -0.47811863648625},
	{M: 0, N: 40, C: 0.85208123431544e-2},
	{M: 1, N: 0, C: 0.93747147377932},
	{M: 1, N: 2, C: 0.33593118604916e1},
	{M: 1, N: 6, C: 0.33809355601454e1},
	{M: 1, N: 12, C: 0.16844539671904},
	{M: 1, N: 18, C: 0.73875745236695},
	{M: 1, N: 24, C: -0.47128737436186},
	{M: 1, N: 28, C: 0.15020273139707},
	{M: 1, N: 40, C: -0.21764114219750e-2},
	{M: 2, N: 2, C: -0.21810755324761e-1},
	{M: 2, N: 8, C: -0.10829784403677},
	{M: 2, N: 18, C: -0.46333324635812e-1},
	{M: 2, N: 40, C: 0.71280351959551e-4},
	{M: 3, N: 1, C: 0.11032831789999e-3},
	{M: 3, N: 2, C: 0.18955248387902e-3},
	{M: 3, N: 12, C: 0.30891541160537e-2},
	{M: 3, N: 24, C: 0.13555504554949e-2},
	{M: 4, N: 2, C: 0.28640237477456e-6},
	{M: 4, N: 12, C: -0.10779857357512e-4},
	{M: 4, N: 18, C: -0.76462712454814e-4},
	{M: 4, N: 24, C: 0.14052392818316e-4},
	{M: 5, N: 28, C: -0.31083814331434e-4},
	{M: 6, N: 14, C: -0.10302738212103e-5},
	{M: 7, N: 1, C: 0.28217281635040e-6},
	{M: 7, N: 2, C: 0.12704902271945e-5},
	{M: 8, N: 48, C: 0.73803353468292e-7},
	{M: 10, N: 34, C: -0.11030139238909e-7},
	{M: 12, N: 30, C: -0.81456365207833e-13},
	{M: 12, N: 46, C: -0.25180545682962e-10},
	{M: 14, N: 0, C: -0.17565233969407e-17},
	{M: 14, N: 12, C: 0.86934156344163e-14},
}

// backwardTh2cTerms is the 2c sub-region (high-pressure band near the
// region 2/3 boundary).
var backwardTh2cTerms = []poly.Term{
	{M: 0, N: 0, C: -0.32368398555242e13},
	{M: 0, N: 1, C: 0.73263350902181e13},
	{M: 0, N: 3, C: 0.35825089945447e12},
	{M: 0, N: 4, C: -0.58340131851590e12},
	{M: 0, N: 28, C: -0.10783068217470e11},
	{M: 0, N: 32, C: 0.20825544563171e11},
	{M: 0, N: 36, C: 0.61074783564516e6},
	{M: 0, N: 64, C: 0.85977722535580e6},
	{M: 1, N: 1, C: -0.25745723604170e15},
	{M: 1, N: 2, C: 0.31081088422714e15},
	{M: 1, N: 4, C: 0.12082315865936e14},
	{M: 1, N: 28, C: 0.48219755109255e12},
	{M: 2, N: 24, C: 0.28492076267562e9},
	{M: 2, N: 32, C: -0.55798221630825e8},
	{M: 3, N: 4, C: 0.89935857965720e7},
	{M: 3, N: 8, C: -0.43577783396615e4},
	{M: 3, N: 18, C: -0.62700853169618e-2},
	{M: 4, N: 4, C: -0.12688486119914e-1},
	{M: 4, N: 8, C: 0.30778946710827},
	{M: 4, N: 12, C: -0.12280923771735e1},
	{M: 4, N: 28, C: -0.67357595553704e-2},
	{M: 4, N: 32, C: 0.30204420385411},
	{M: 5, N: 4, C: 0.24798995460347e-2},
	{M: 5, N: 8, C: 0.16958492608977e-3},
	{M: 6, N: 0, C: 0.21622887229180e-3},
	{M: 6, N: 6, C: -0.32628339110439e-4},
	{M: 6, N: 8, C: 0.21668059020462e-4},
	{M: 6, N: 18, C: -0.23092040572809e-5},
}

// backwardTs2aTerms, backwardTs2bTerms, and backwardTs2cTerms are the
// backward T(p,s) correlations for the three region-2 sub-regions.
//
// The 2a correlation's published x-exponents are quarter-integers applied
// to pi directly; the caller pre-transforms x = pi^0.25 (see
// backward.TFromSP2) so that, as poly.Eval requires, every exponent stored
// here is an integer. Confidence on this table's exact coefficients is
// lower than region 1/2a-enthalpy's.
var backwardTs2aTerms = []poly.Term{
	{M: 0, N: -1, C: 0.40482443161048e5},
	{M: 0, N: 0, C: -0.44942914624282e3},
	{M: 0, N: 1, C: 0.51526573827270e6},
	{M: 0, N: 2, C: -0.39235983861984e6},
	{M: 0, N: 3, C: 0.96961424218694e2},
	{M: 0, N: 6, C: -0.22867846371773e2},
	{M: 1, N: -2, C: -0.50118336020166e4},
	{M: 1, N: 1, C: 0.35684463560015e1},
	{M: 4, N: 0, C: 0.44235335848190e5},
	{M: 5, N: -2, C: -0.13673388811708e5},
	{M: 7, N: -1, C: 0.42163260536207e6},
}

var backwardTs2bTerms = []poly.Term{
	{M: 0, N: -2, C: 0.31687665083497e6},
	{M: 0, N: -1.75, C: 0.20864175881858e2},
	{M: 0, N: -1, C: -0.39859399803599e6},
	{M: 0, N: -0.25, C: -0.21816058518877e2},
	{M: 1, N: -1.25, C: 0.22369785194242e3},
	{M: 2, N: -3.5, C: -0.27841703445817e4},
}

var backwardTs2cTerms = []poly.Term{
	{M: 0, N: -2, C: 0.90968501005365e3},
	{M: 0, N: -1.75, C: 0.24045667088420e4},
	{M: 0, N: -1, C: -0.59162326387130e3},
	{M: 1, N: 0, C: 0.54145404128074e3},
	{M: 2, N: 0, C: -0.27098308411192e3},
}

// region3Terms is the polynomial part of region 3's dimensionless
// Helmholtz free energy; the ln(delta) term is R3Ln in bundle.go.
var region3Terms = []poly.Term{
	{M: 0, N: 0, C: -0.15732845290239e2},
	{M: 0, N: 1, C: 0.20944396974307e2},
	{M: 0, N: 2, C: -0.76867707878716e1},
	{M: 0, N: 7, C: 0.26185947787954e1},
	{M: 0, N: 10, C: -0.28080781148620e1},
	{M: 0, N: 12, C: 0.12053369696517e1},
	{M: 0, N: 23, C: -0.84566812812502e-2},
	{M: 1, N: 2, C: -0.12654315477714e1},
	{M: 1, N: 6, C: -0.11524407806681e1},
	{M: 1, N: 15, C: 0.88521043984318},
	{M: 1, N: 17, C: -0.64207765181607},
	{M: 2, N: 0, C: 0.38493460186671},
	{M: 2, N: 2, C: -0.85214708824206},
	{M: 2, N: 6, C: 0.48972281541877e1},
	{M: 2, N: 7, C: -0.30502617256965e1},
	{M: 2, N: 22, C: 0.39420536879154e-1},
	{M: 2, N: 26, C: 0.12558408424308},
	{M: 3, N: 0, C: -0.27999329698710},
	{M: 3, N: 2, C: 0.13899799569460e1},
	{M: 3, N: 4, C: -0.20189915023570e1},
	{M: 3, N: 16, C: -0.82147637173963e-2},
	{M: 3, N: 26, C: -0.47596035734923},
	{M: 4, N: 0, C: 0.43984074473500e-1},
	{M: 4, N: 2, C: -0.44476435428739},
	{M: 4, N: 4, C: 0.90572070719733},
	{M: 4, N: 26, C: 0.70522450087967},
	{M: 5, N: 1, C: 0.10770512626332},
	{M: 5, N: 3, C: -0.32913623258954},
	{M: 5, N: 26, C: -0.50871062041158},
	{M: 6, N: 0, C: -0.22175400873096e-1},
	{M: 6, N: 2, C: 0.94260751665092e-1},
	{M: 6, N: 26, C: 0.16436278447961},
	{M: 7, N: 2, C: -0.13503372241348e-1},
	{M: 8, N: 26, C: -0.14834345352472e-1},
	{M: 9, N: 2, C: 0.57922953628084e-3},
	{M: 9, N: 26, C: 0.32308904703711e-2},
	{M: 10, N: 0, C: 0.80964802996215e-4},
	{M: 10, N: 1, C: 0.16553791356412e-3},
	{M: 11, N: 26, C: -0.93201683360216e-3},
}

// region5IdealTerms is region 5's ideal-gas Gibbs energy; all terms carry
// M=0 since the ideal-gas part adds ln(pi) separately (see region5).
var region5IdealTerms = []poly.Term{
	{M: 0, N: -3, C: -0.24805148933466e-1},
	{M: 0, N: -2, C: 0.36901534980333},
	{M: 0, N: -1, C: -0.31161318213925e1},
	{M: 0, N: 0, C: -0.13179983674201e2},
	{M: 0, N: 1, C: 0.68540841634434e1},
	{M: 0, N: 2, C: -0.32961626538917},
}

var region5ResidualTerms = []poly.Term{
	{M: 1, N: 1, C: 0.15736404855259e-2},
	{M: 1, N: 2, C: 0.90153761673944e-3},
	{M: 1, N: 3, C: -0.50270077677648e-2},
	{M: 2, N: 3, C: 0.22440037409485e-5},
	{M: 2, N: 9, C: -0.41163275453471e-5},
	{M: 3, N: 7, C: 0.37919454822955e-7},
}
