package services

// Tank capacities in gallons for common 2015-2025 vehicles,
// keyed "year|make|model".
var tankCapacityTable = map[string]float64{
	// Honda
	"2024|Honda|Civic":  12.4,
	"2023|Honda|Civic":  12.4,
	"2022|Honda|Civic":  12.4,
	"2024|Honda|Accord": 14.8,
	"2023|Honda|Accord": 14.8,
	"2022|Honda|Accord": 14.8,
	"2024|Honda|CR-V":   14.0,
	"2023|Honda|CR-V":   14.0,
	"2022|Honda|CR-V":   14.0,
	"2024|Honda|Pilot":  19.5,
	"2023|Honda|Pilot":  19.5,

	// Toyota
	"2024|Toyota|Camry":      15.8,
	"2023|Toyota|Camry":      15.8,
	"2022|Toyota|Camry":      15.8,
	"2024|Toyota|Corolla":    13.2,
	"2023|Toyota|Corolla":    13.2,
	"2022|Toyota|Corolla":    13.2,
	"2024|Toyota|RAV4":       14.5,
	"2023|Toyota|RAV4":       14.5,
	"2022|Toyota|RAV4":       14.5,
	"2024|Toyota|Highlander": 17.1,
	"2023|Toyota|Highlander": 17.1,
	"2024|Toyota|Tacoma":     21.1,
	"2023|Toyota|Tacoma":     21.1,

	// Ford
	"2024|Ford|F-150":    23.0,
	"2023|Ford|F-150":    23.0,
	"2022|Ford|F-150":    23.0,
	"2024|Ford|Mustang":  15.5,
	"2023|Ford|Mustang":  15.5,
	"2024|Ford|Explorer": 18.0,
	"2023|Ford|Explorer": 18.0,
	"2024|Ford|Escape":   14.0,
	"2023|Ford|Escape":   14.0,
	"2024|Ford|Edge":     15.7,

	// Chevrolet
	"2024|Chevrolet|Silverado 1500": 24.0,
	"2023|Chevrolet|Silverado 1500": 24.0,
	"2022|Chevrolet|Silverado 1500": 24.0,
	"2024|Chevrolet|Equinox":        14.0,
	"2023|Chevrolet|Equinox":        14.0,
	"2024|Chevrolet|Malibu":         15.8,
	"2023|Chevrolet|Malibu":         15.8,
	"2024|Chevrolet|Tahoe":          24.0,
	"2023|Chevrolet|Tahoe":          24.0,

	// Nissan
	"2024|Nissan|Altima":     16.2,
	"2023|Nissan|Altima":     16.2,
	"2024|Nissan|Rogue":      14.5,
	"2023|Nissan|Rogue":      14.5,
	"2024|Nissan|Sentra":     12.3,
	"2023|Nissan|Sentra":     12.3,
	"2024|Nissan|Pathfinder": 19.5,

	// Hyundai
	"2024|Hyundai|Elantra":  12.8,
	"2023|Hyundai|Elantra":  12.8,
	"2024|Hyundai|Sonata":   15.9,
	"2023|Hyundai|Sonata":   15.9,
	"2024|Hyundai|Tucson":   14.3,
	"2023|Hyundai|Tucson":   14.3,
	"2024|Hyundai|Santa Fe": 17.7,

	// Mazda
	"2024|Mazda|Mazda3": 13.2,
	"2023|Mazda|Mazda3": 13.2,
	"2024|Mazda|CX-5":   15.3,
	"2023|Mazda|CX-5":   15.3,
	"2024|Mazda|CX-9":   19.5,

	// Subaru
	"2024|Subaru|Outback":   18.5,
	"2023|Subaru|Outback":   18.5,
	"2024|Subaru|Forester":  16.6,
	"2023|Subaru|Forester":  16.6,
	"2024|Subaru|Crosstrek": 16.6,

	// Jeep
	"2024|Jeep|Grand Cherokee": 24.6,
	"2023|Jeep|Grand Cherokee": 24.6,
	"2024|Jeep|Wrangler":       21.5,
	"2023|Jeep|Wrangler":       21.5,
	"2024|Jeep|Cherokee":       15.8,

	// RAM
	"2024|RAM|1500": 26.0,
	"2023|RAM|1500": 26.0,
	"2022|RAM|1500": 26.0,

	// GMC
	"2024|GMC|Sierra 1500": 24.0,
	"2023|GMC|Sierra 1500": 24.0,
	"2024|GMC|Acadia":      19.4,

	// Volkswagen
	"2024|Volkswagen|Jetta":  13.2,
	"2023|Volkswagen|Jetta":  13.2,
	"2024|Volkswagen|Tiguan": 15.3,
	"2023|Volkswagen|Tiguan": 15.3,

	// Kia
	"2024|Kia|Forte":    13.2,
	"2023|Kia|Forte":    13.2,
	"2024|Kia|Sportage": 16.4,
	"2023|Kia|Sportage": 16.4,
	"2024|Kia|Sorento":  17.7,

	// Mercedes-Benz
	"2024|Mercedes-Benz|C-Class": 17.4,
	"2023|Mercedes-Benz|C-Class": 17.4,
	"2024|Mercedes-Benz|E-Class": 21.1,

	// BMW
	"2024|BMW|3 Series": 15.6,
	"2023|BMW|3 Series": 15.6,
	"2024|BMW|5 Series": 18.5,
	"2024|BMW|X3":       17.2,
	"2024|BMW|X5":       21.9,

	// Audi
	"2024|Audi|A4": 16.9,
	"2023|Audi|A4": 16.9,
	"2024|Audi|Q5": 19.8,
	"2023|Audi|Q5": 19.8,

	// Lexus
	"2024|Lexus|ES": 15.9,
	"2023|Lexus|ES": 15.9,
	"2024|Lexus|RX": 19.2,
	"2023|Lexus|RX": 19.2,

	// Acura
	"2024|Acura|Integra": 12.8,
	"2024|Acura|TLX":     17.2,
	"2024|Acura|MDX":     19.5,

	// Tesla (electric, no gas tank)
	"2024|Tesla|Model 3": 0,
	"2024|Tesla|Model Y": 0,
	"2024|Tesla|Model S": 0,
	"2024|Tesla|Model X": 0,

	// Dodge
	"2024|Dodge|Charger": 18.5,
	"2023|Dodge|Charger": 18.5,
	"2024|Dodge|Durango": 24.6,
}
