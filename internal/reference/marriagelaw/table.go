package marriagelaw

// table covers the 50 states plus DC. Minimum ages are the no-consent
// marriage ages; relationship columns reflect state statute as compiled for
// the intake questionnaire. Legal review owns updates to this file.
var table = map[string]Jurisdiction{
	"AL": {Code: "AL", Name: "Alabama", MinimumAge: 18, FirstCousinsAllowed: true},
	"AK": {Code: "AK", Name: "Alaska", MinimumAge: 18, FirstCousinsAllowed: true},
	"AZ": {Code: "AZ", Name: "Arizona", MinimumAge: 18, FirstCousinsAllowed: false},
	"AR": {Code: "AR", Name: "Arkansas", MinimumAge: 18, FirstCousinsAllowed: false},
	"CA": {Code: "CA", Name: "California", MinimumAge: 18, FirstCousinsAllowed: true},
	"CO": {Code: "CO", Name: "Colorado", MinimumAge: 18, FirstCousinsAllowed: true},
	"CT": {Code: "CT", Name: "Connecticut", MinimumAge: 18, FirstCousinsAllowed: true},
	"DE": {Code: "DE", Name: "Delaware", MinimumAge: 18, FirstCousinsAllowed: false},
	"DC": {Code: "DC", Name: "District of Columbia", MinimumAge: 18, FirstCousinsAllowed: true},
	"FL": {Code: "FL", Name: "Florida", MinimumAge: 18, FirstCousinsAllowed: true},
	"GA": {Code: "GA", Name: "Georgia", MinimumAge: 18, FirstCousinsAllowed: true},
	"HI": {Code: "HI", Name: "Hawaii", MinimumAge: 18, FirstCousinsAllowed: true},
	"ID": {Code: "ID", Name: "Idaho", MinimumAge: 18, FirstCousinsAllowed: false},
	"IL": {Code: "IL", Name: "Illinois", MinimumAge: 18, FirstCousinsAllowed: false},
	"IN": {Code: "IN", Name: "Indiana", MinimumAge: 18, FirstCousinsAllowed: false},
	"IA": {Code: "IA", Name: "Iowa", MinimumAge: 18, FirstCousinsAllowed: false},
	"KS": {Code: "KS", Name: "Kansas", MinimumAge: 18, FirstCousinsAllowed: false},
	"KY": {Code: "KY", Name: "Kentucky", MinimumAge: 18, FirstCousinsAllowed: false},
	"LA": {Code: "LA", Name: "Louisiana", MinimumAge: 18, FirstCousinsAllowed: false},
	"ME": {Code: "ME", Name: "Maine", MinimumAge: 18, FirstCousinsAllowed: true},
	"MD": {Code: "MD", Name: "Maryland", MinimumAge: 18, FirstCousinsAllowed: true},
	"MA": {Code: "MA", Name: "Massachusetts", MinimumAge: 18, FirstCousinsAllowed: true},
	"MI": {Code: "MI", Name: "Michigan", MinimumAge: 18, FirstCousinsAllowed: false},
	"MN": {Code: "MN", Name: "Minnesota", MinimumAge: 18, FirstCousinsAllowed: false},
	"MS": {Code: "MS", Name: "Mississippi", MinimumAge: 21, FirstCousinsAllowed: false},
	"MO": {Code: "MO", Name: "Missouri", MinimumAge: 18, FirstCousinsAllowed: false},
	"MT": {Code: "MT", Name: "Montana", MinimumAge: 18, FirstCousinsAllowed: false},
	"NE": {Code: "NE", Name: "Nebraska", MinimumAge: 19, FirstCousinsAllowed: false},
	"NV": {Code: "NV", Name: "Nevada", MinimumAge: 18, FirstCousinsAllowed: false},
	"NH": {Code: "NH", Name: "New Hampshire", MinimumAge: 18, FirstCousinsAllowed: false},
	"NJ": {Code: "NJ", Name: "New Jersey", MinimumAge: 18, FirstCousinsAllowed: true},
	"NM": {Code: "NM", Name: "New Mexico", MinimumAge: 18, FirstCousinsAllowed: true},
	"NY": {Code: "NY", Name: "New York", MinimumAge: 18, FirstCousinsAllowed: true},
	"NC": {Code: "NC", Name: "North Carolina", MinimumAge: 18, FirstCousinsAllowed: true},
	"ND": {Code: "ND", Name: "North Dakota", MinimumAge: 18, FirstCousinsAllowed: false},
	"OH": {Code: "OH", Name: "Ohio", MinimumAge: 18, FirstCousinsAllowed: false},
	"OK": {Code: "OK", Name: "Oklahoma", MinimumAge: 18, FirstCousinsAllowed: false},
	"OR": {Code: "OR", Name: "Oregon", MinimumAge: 18, FirstCousinsAllowed: false},
	"PA": {Code: "PA", Name: "Pennsylvania", MinimumAge: 18, FirstCousinsAllowed: false},
	"RI": {Code: "RI", Name: "Rhode Island", MinimumAge: 18, FirstCousinsAllowed: true},
	"SC": {Code: "SC", Name: "South Carolina", MinimumAge: 18, FirstCousinsAllowed: true},
	"SD": {Code: "SD", Name: "South Dakota", MinimumAge: 18, FirstCousinsAllowed: false},
	"TN": {Code: "TN", Name: "Tennessee", MinimumAge: 18, FirstCousinsAllowed: true},
	"TX": {Code: "TX", Name: "Texas", MinimumAge: 18, FirstCousinsAllowed: false},
	"UT": {Code: "UT", Name: "Utah", MinimumAge: 18, FirstCousinsAllowed: false},
	"VT": {Code: "VT", Name: "Vermont", MinimumAge: 18, FirstCousinsAllowed: true},
	"VA": {Code: "VA", Name: "Virginia", MinimumAge: 18, FirstCousinsAllowed: true},
	"WA": {Code: "WA", Name: "Washington", MinimumAge: 18, FirstCousinsAllowed: false},
	"WV": {Code: "WV", Name: "West Virginia", MinimumAge: 18, FirstCousinsAllowed: false},
	"WI": {Code: "WI", Name: "Wisconsin", MinimumAge: 18, FirstCousinsAllowed: false},
	"WY": {Code: "WY", Name: "Wyoming", MinimumAge: 18, FirstCousinsAllowed: false},
}

// adoptedSiblingStates lists jurisdictions that permit marriage between
// siblings related only through adoption.
var adoptedSiblingStates = map[string]bool{
	"CA": true,
	"CO": true,
	"CT": true,
	"FL": true,
	"GA": true,
	"IL": true,
	"MD": true,
	"MA": true,
	"NJ": true,
	"NM": true,
	"NY": true,
	"TX": true,
	"VA": true,
	"WA": true,
}

// stepSiblingStates lists jurisdictions that permit step-sibling marriage.
// Most states do not treat affinity through remarriage as an impediment.
var stepSiblingStates = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true, "CO": true,
	"CT": true, "DE": true, "DC": true, "FL": true, "GA": true, "HI": true,
	"ID": true, "IL": true, "IN": true, "IA": true, "KS": true, "KY": true,
	"LA": true, "ME": true, "MD": true, "MA": true, "MI": true, "MN": true,
	"MO": true, "MT": true, "NE": true, "NV": true, "NH": true, "NJ": true,
	"NM": true, "NY": true, "NC": true, "ND": true, "OH": true, "OK": true,
	"OR": true, "PA": true, "RI": true, "SC": true, "SD": true, "TN": true,
	"TX": true, "UT": true, "WA": true, "WV": true, "WI": true, "WY": true,
}
