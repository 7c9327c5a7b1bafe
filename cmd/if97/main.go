// Command if97 is a thin CLI over the steamprops façade: given a mode and
// two inputs, it prints the resulting property set. It carries no
// business logic of its own — every computation happens in
// internal/steamprops.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/vaporcore/if97/internal/steamprops"
)

func main() {
	mode := flag.String("mode", "tp", "calculation mode: tp, hp, or sp")
	t := flag.Float64("t", 0, "temperature in K (tp mode)")
	p := flag.Float64("p", 0, "pressure in bar (tp/hp/sp mode)")
	h := flag.Float64("h", 0, "specific enthalpy in kJ/kg (hp mode)")
	s := flag.Float64("s", 0, "specific entropy in kJ/(kg*K) (sp mode)")
	flag.Parse()

	calc := steamprops.New(steamprops.Defaults{DefaultT: 293.15, DefaultP: 1.01325})

	switch *mode {
	case "tp":
		props, err := calc.Calculate(*t, *p)
		if err != nil {
			log.Fatalf("if97: %v", err)
		}
		printProperties(props)
	case "hp":
		tK, err := calc.TFromHP(*h, *p)
		if err != nil {
			log.Fatalf("if97: %v", err)
		}
		props, err := calc.Calculate(tK, *p)
		if err != nil {
			log.Fatalf("if97: %v", err)
		}
		fmt.Printf("T = %g K\n", tK)
		printProperties(props)
	case "sp":
		tK, err := calc.TFromSP(*s, *p)
		if err != nil {
			log.Fatalf("if97: %v", err)
		}
		props, err := calc.Calculate(tK, *p)
		if err != nil {
			log.Fatalf("if97: %v", err)
		}
		fmt.Printf("T = %g K\n", tK)
		printProperties(props)
	default:
		log.Fatalf("if97: unknown mode %q (want tp, hp, or sp)", *mode)
	}
}

func printProperties(p steamprops.Properties) {
	fmt.Printf("region:   %d\n", p.Region)
	fmt.Printf("v  = %g m^3/kg\n", p.SpecificVolume)
	fmt.Printf("rho= %g kg/m^3\n", p.Density)
	fmt.Printf("u  = %g kJ/kg\n", p.SpecificInternalEnergy)
	fmt.Printf("h  = %g kJ/kg\n", p.SpecificEnthalpy)
	fmt.Printf("s  = %g kJ/(kg*K)\n", p.SpecificEntropy)
	fmt.Printf("cv = %g kJ/(kg*K)\n", p.SpecificIsochoricHeatCapacity)
	fmt.Printf("cp = %g kJ/(kg*K)\n", p.SpecificIsobaricHeatCapacity)
	fmt.Printf("w  = %g m/s\n", p.SpeedOfSound)
}
