package book

import (
	"context"
	"fmt"
	"log"
)

// SeedData returns example books to pre-populate a demo catalog.
func SeedData() []Input {
	return []Input{
		{
			Name:      "Dune",
			Year:      1965,
			Author:    "Frank Herbert",
			Summary:   "A desert planet, a noble house and the spice that rules the universe.",
			Publisher: "Chilton Books",
			PageCount: 412,
			ReadPage:  412,
			Reading:   false,
		},
		{
			Name:      "The Go Programming Language",
			Year:      2015,
			Author:    "Alan A. A. Donovan",
			Summary:   "A thorough introduction to Go.",
			Publisher: "Addison-Wesley",
			PageCount: 380,
			ReadPage:  120,
			Reading:   true,
		},
		{
			Name:      "Laskar Pelangi",
			Year:      2005,
			Author:    "Andrea Hirata",
			Summary:   "Ten children and their school on Belitung island.",
			Publisher: "Bentang Pustaka",
			PageCount: 529,
			ReadPage:  0,
			Reading:   false,
		},
	}
}

// Seed adds every input through the service so the usual validation applies.
func Seed(ctx context.Context, svc *Service, inputs []Input) error {
	for i, in := range inputs {
		if _, err := svc.Add(ctx, in); err != nil {
			return fmt.Errorf("seed book %d (%q): %w", i, in.Name, err)
		}
	}
	log.Printf("seeded %d books", len(inputs))
	return nil
}
