package measures

import (
	"github.com/teranos/measure/numeric"
	"github.com/teranos/measure/registry"
	"github.com/teranos/measure/unit"
)

func list(s ...string) []string { return s }

func distanceUnits[N numeric.Number[N]]() []registry.Entry[N] {
	u, metric := unit.MustNew[N], unit.MustMetric[N]
	return []registry.Entry[N]{
		{Name: "metre", Unit: metric("1", list("m", "meter", "Meter", "Metre"), list("m"), list("metre", "meter"))},
		{Name: "parsec", Unit: metric("3.0857E+16", list("Parsec", "pc"), list("pc"), list("parsec"))},
		{Name: "astronomical_unit", Unit: metric("1.495978707E+11", list("au", "ua", "AU"), list("au", "ua", "AU"), nil)},
		{Name: "foot", Unit: u("0.3048", "ft", "feet", "Foot (International)")},
		{Name: "inch", Unit: u("0.0254", "in", "inches")},
		{Name: "mile", Unit: u("1609.344", "mi", "miles")},
		{Name: "yard", Unit: u("0.9144", "yd")},
		{Name: "chain", Unit: u("20.1168")},
		{Name: "chain_benoit", Unit: u("20.116782", "Chain (Benoit)")},
		{Name: "chain_sears", Unit: u("20.1167645", "Chain (Sears)")},
		{Name: "british_chain_benoit", Unit: u("20.1167824944", "British chain (Benoit 1895 B)")},
		{Name: "british_chain_sears", Unit: u("20.1167651216", "British chain (Sears 1922)")},
		{Name: "british_chain_sears_truncated", Unit: u("20.116756", "British chain (Sears 1922 truncated)")},
		{Name: "british_foot", Unit: u("0.304799471539", "british_ft", "British foot", "British foot (Sears 1922)")},
		{Name: "british_yard", Unit: u("0.914398414616", "british_yd", "British yard", "British yard (Sears 1922)")},
		{Name: "clarke_foot", Unit: u("0.3047972654", "clarke_ft", "Clarke's Foot")},
		{Name: "clarke_link", Unit: u("0.201166195164", "Clarke's link")},
		{Name: "fathom", Unit: u("1.8288")},
		{Name: "german_meter", Unit: u("1.0000135965", "german_m", "German legal metre")},
		{Name: "gold_coast_foot", Unit: u("0.304799710181508", "gold_coast_ft", "Gold Coast foot")},
		{Name: "indian_yard", Unit: u("0.914398530744", "indian_yd", "Indian yard", "Yard (Indian)")},
		{Name: "link", Unit: u("0.201168", "Link")},
		{Name: "link_benoit", Unit: u("0.20116782", "Link (Benoit)")},
		{Name: "link_sears", Unit: u("0.20116765", "Link (Sears)")},
		{Name: "nautical_mile", Unit: u("1852", "Nautical Mile", "NM", "nmi")},
		{Name: "nautical_mile_uk", Unit: u("1853.184", "nm_uk", "Nautical Mile (UK)")},
		{Name: "rod", Unit: u("5.0292")},
		{Name: "sears_yard", Unit: u("0.91439841", "sears_yd", "Yard (Sears)")},
		{Name: "survey_foot", Unit: u("0.304800609601", "survey_ft", "US survey foot", "U.S. Foot")},
	}
}

func areaExtras[N numeric.Number[N]]() []registry.Entry[N] {
	u := unit.MustNew[N]
	return []registry.Entry[N]{
		{Name: "acre", Unit: u("4046.8564224", "Acre", "ac")},
		{Name: "hectare", Unit: u("10000", "Hectare", "ha")},
	}
}

func volumeExtras[N numeric.Number[N]]() []registry.Entry[N] {
	u, metric := unit.MustNew[N], unit.MustMetric[N]
	return []registry.Entry[N]{
		{Name: "litre", Unit: metric("1e-3", list("liter", "L", "l", "ℓ"), list("L", "l", "ℓ"), list("litre", "liter"))},

		{Name: "us_gallon", Unit: u("3.785411784e-3", "US gallon", "US gal", "US fluid gallon", "gallon (US)")},
		{Name: "us_fluid_ounce", Unit: u("29.5735295625e-6", "US oz", "US fl oz")},
		{Name: "us_fluid_ounce_food", Unit: u("30e-6", "US fluid ounce (food nutrition labelling)")},
		{Name: "us_liquid_quart", Unit: u("0.946352946e-3", "US liquid quart")},
		{Name: "us_liquid_pint", Unit: u("473.176473e-6")},
		{Name: "us_cup", Unit: u("236.5882365e-6", "US cup")},
		{Name: "us_gill", Unit: u("118.29411825e-6")},
		{Name: "us_tablespoon", Unit: u("14.78676478125e-6", "US tbsp", "US Tbsp")},
		{Name: "us_teaspoon", Unit: u("4.92892159375e-6", "US tsp")},
		{Name: "us_fluid_dram", Unit: u("3.6966911953125e-6")},

		{Name: "us_dry_gallon", Unit: u("4.40488377086e-3", "US dry gallon", "corn gallon", "grain gallon")},
		{Name: "us_dry_quart", Unit: u("1.101220942715e-3")},
		{Name: "us_dry_pint", Unit: u("550.6104713575e-6")},
		{Name: "us_bushel", Unit: u("35.23907016688e-3", "US bsh", "US bu")},

		{Name: "cubic_inch", Unit: u("16.387064e-6", "cu in")},
		{Name: "cubic_foot", Unit: u("0.028316846592", "cu ft")},

		{Name: "imperial_gallon", Unit: u("4.54609e-3", "Imperial gallon", "Imperial gal", "gallon (Imperial)")},
		{Name: "imperial_fluid_ounce", Unit: u("28.4130625e-6", "Imperial fluid ounce", "imp fl oz")},
		{Name: "imperial_quart", Unit: u("1.1365225e-3", "Imperial quart")},
		{Name: "imperial_pint", Unit: u("568.26125e-6", "Imperial pint")},
		{Name: "imperial_gill", Unit: u("142.0653125e-6", "Imperial gill")},
		{Name: "imperial_bushel", Unit: u("36.36872e-3", "imp bsh", "imp bu")},
		{Name: "imperial_fluid_drachm", Unit: u("3.5516328125e-6", "fluid drachm")},

		{Name: "au_tablespoon", Unit: u("20e-6", "Australian tablespoon", "Australian tbsp")},
		{Name: "metric_teaspoon", Unit: u("5e-6", "US tsp (food nutrition labelling)", "metric tsp", "Australian tsp")},

		{Name: "oil_barrel", Unit: u("158.987294928e-3", "oil bbl", "bbl")},
	}
}

func massUnits[N numeric.Number[N]]() []registry.Entry[N] {
	u, metric := unit.MustNew[N], unit.MustMetric[N]
	return []registry.Entry[N]{
		{Name: "gram", Unit: metric("1", list("g", "Gram"), list("g"), list("gram"))},
		{Name: "tonne", Unit: u("1000000", "t", "metric ton", "metric tonne")},
		{Name: "ounce", Unit: u("28.349523125", "oz")},
		{Name: "pound", Unit: u("453.59237", "lb", "lbs")},
		{Name: "stone", Unit: u("6350.29318", "st")},
		{Name: "short_ton", Unit: u("907184.74", "ton", "US ton")},
		{Name: "long_ton", Unit: u("1016046.9088", "imperial ton")},
	}
}

func timeUnits[N numeric.Number[N]]() []registry.Entry[N] {
	u, metric := unit.MustNew[N], unit.MustMetric[N]
	return []registry.Entry[N]{
		{Name: "second", Unit: metric("1", list("s", "sec"), list("s"), list("second"))},
		{Name: "minute", Unit: u("60", "min")},
		{Name: "hour", Unit: u("3600", "h", "hr")},
		{Name: "day", Unit: u("86400", "d")},
		{Name: "week", Unit: u("604800", "wk")},
		{Name: "julian_year", Unit: u("31557600", "a", "yr", "year")},
	}
}

func speedExtras[N numeric.Number[N]]() []registry.Entry[N] {
	return []registry.Entry[N]{
		{Name: "mph", Unit: unit.MustNew[N]("0.44704", "mile per hour", "miles per hour")},
		{Name: "kph", Unit: unit.MustFraction[N]("1", "3.6", "kmh", "kilometre per hour", "kilometer per hour")},
		{Name: "knot", Unit: unit.MustFraction[N]("1852", "3600", "kn", "kt")},
	}
}

func flowExtras[N numeric.Number[N]]() []registry.Entry[N] {
	u := unit.MustNew[N]
	return []registry.Entry[N]{
		{Name: "cms", Unit: u("1", "cumecs", "CMS")},
		{Name: "cfs", Unit: u("0.028316846592", "CFS", "cubic feet per second")},
		{Name: "gpm", Unit: unit.MustFraction[N]("3.785411784e-3", "60", "GPM", "gallons per minute")},
		{Name: "miners_inch_50", Unit: u("566.33693184e-6", "mi_50")},
		{Name: "miners_inch_40", Unit: u("707.9211648e-6", "mi_40")},
		{Name: "miners_inch_38_4", Unit: u("737.41788e-6", "mi_38_4")},
	}
}

func pressureUnits[N numeric.Number[N]]() []registry.Entry[N] {
	u, metric := unit.MustNew[N], unit.MustMetric[N]
	return []registry.Entry[N]{
		{Name: "pascal", Unit: metric("1", list("Pa", "pa"), list("Pa", "pa"), list("pascal"))},
		{Name: "bar", Unit: metric("100000", nil, list("bar"), nil)},
		{Name: "atmosphere", Unit: u("101325", "atm")},
		{Name: "technical_atmosphere", Unit: u("98066.5", "at")},
		{Name: "torr", Unit: u("133.322", "Torr")},
		{Name: "psi", Unit: u("6894.757293168", "pounds per square inch")},
		{Name: "inHg", Unit: u("3386.38816", "inches of mercury")},
		{Name: "mmHg", Unit: u("133.322387415", "millimetres of mercury")},
	}
}

func temperatureUnits[N numeric.Number[N]]() []registry.Entry[N] {
	return []registry.Entry[N]{
		{Name: "kelvin", Unit: unit.MustMetric[N]("1", list("K", "Kelvin"), list("K"), list("kelvin"))},
		{Name: "celsius", Unit: unit.MustAffine[N]("273.15", "1", "1", "°C", "Celsius")},
		{Name: "fahrenheit", Unit: unit.MustAffine[N]("459.67", "5", "9", "°F", "Fahrenheit")},
		{Name: "rankine", Unit: unit.MustFraction[N]("5", "9", "°R", "Ra", "Rankine")},
	}
}

func energyUnits[N numeric.Number[N]]() []registry.Entry[N] {
	u, metric := unit.MustNew[N], unit.MustMetric[N]
	return []registry.Entry[N]{
		{Name: "joule", Unit: metric("1", list("J", "Joule"), list("J"), list("joule"))},
		{Name: "calorie", Unit: metric("4.184", list("cal"), list("cal"), list("calorie"))},
		{Name: "Calorie", Unit: u("4184", "Cal", "food calorie")},
		{Name: "watt_hour", Unit: metric("3600", list("Wh"), list("Wh"), nil)},
		{Name: "electronvolt", Unit: metric("1.602176634E-19", list("eV"), list("eV"), list("electronvolt"))},
		{Name: "btu", Unit: u("1055.05585262", "BTU", "Btu")},
	}
}

func electricPowerUnits[N numeric.Number[N]]() []registry.Entry[N] {
	return []registry.Entry[N]{
		{Name: "watt", Unit: unit.MustMetric[N]("1", list("W", "VA", "Watt", "Voltampere"), list("W", "VA"), list("watt", "voltampere"))},
		{Name: "horsepower", Unit: unit.MustNew[N]("745.69987158227022", "hp")},
	}
}

func frequencyUnits[N numeric.Number[N]]() []registry.Entry[N] {
	return []registry.Entry[N]{
		{Name: "hertz", Unit: unit.MustMetric[N]("1", list("Hz"), list("Hz"), list("hertz"))},
		{Name: "rpm", Unit: unit.MustFraction[N]("1", "60", "RPM", "revolutions per minute")},
	}
}

// si declares a dimension with a single metric unit, the shape every
// electromagnetic dimension shares.
func si[N numeric.Number[N]](name, symbol string, aliases ...string) []registry.Entry[N] {
	long := []string{name}
	return []registry.Entry[N]{
		{Name: name, Unit: unit.MustMetric[N]("1", append([]string{symbol}, aliases...), list(symbol), long)},
	}
}

func currentUnits[N numeric.Number[N]]() []registry.Entry[N] {
	return []registry.Entry[N]{
		{Name: "ampere", Unit: unit.MustMetric[N]("1", list("A", "amp", "Ampere"), list("A"), list("ampere", "amp"))},
	}
}

func radioactivityUnits[N numeric.Number[N]]() []registry.Entry[N] {
	u := unit.MustNew[N]
	return []registry.Entry[N]{
		{Name: "becquerel", Unit: unit.MustMetric[N]("1", list("Bq", "bq"), list("Bq"), list("becquerel"))},
		{Name: "curie", Unit: u("37000000000", "Ci", "ci")},
		{Name: "rutherford", Unit: u("1000000", "Rd", "rd")},
		{Name: "dpm", Unit: unit.MustFraction[N]("1", "60", "disintegrations per minute")},
	}
}

func dimensionlessUnits[N numeric.Number[N]]() []registry.Entry[N] {
	u := unit.MustNew[N]
	return []registry.Entry[N]{
		{Name: "one", Unit: u("1", "")},
		{Name: "percent", Unit: u("0.01", "%")},
		{Name: "permille", Unit: u("0.001", "‰")},
		{Name: "ppm", Unit: u("0.000001", "parts per million")},
	}
}
