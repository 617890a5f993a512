package values

// ChemistryElements is the category key of chemical element names.
const ChemistryElements = "chemistry.elements"

// Default returns the built-in categories.
func Default() Categories {
	return Categories{
		ChemistryElements: {
			"Hydrogen", "Helium", "Lithium", "Beryllium", "Boron", "Carbon", "Nitrogen",
			"Oxygen", "Fluorine", "Neon", "Sodium", "Magnesium", "Aluminum", "Silicon",
			"Phosphorus", "Sulfur", "Chlorine", "Argon", "Potassium", "Calcium",
			"Scandium", "Titanium", "Vanadium", "Chromium", "Manganese", "Iron",
			"Cobalt", "Nickel", "Copper", "Zinc", "Gallium", "Germanium", "Arsenic",
			"Selenium", "Bromine", "Krypton", "Rubidium", "Strontium", "Yttrium",
			"Zirconium", "Niobium", "Molybdenum", "Technetium", "Ruthenium", "Rhodium",
			"Palladium", "Silver", "Cadmium", "Indium", "Antimony", "Tellurium",
			"Iodine", "Xenon", "Cesium", "Barium", "Lanthanum", "Cerium", "Platinum",
			"Gold", "Mercury", "Thallium", "Lead", "Bismuth", "Polonium", "Radon",
			"Radium", "Thorium", "Uranium", "Plutonium",
		},
	}
}
