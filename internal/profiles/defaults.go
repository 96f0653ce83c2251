// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package profiles

// DefaultLanguage is used whenever detection cannot settle on a supported
// language or a requested language resource is unavailable.
const DefaultLanguage = "en"

// DefaultProfiles returns the built-in profiles for the five supported
// languages, including their pattern tables, abbreviation sets and detection
// signals. These are written to disk on first run and can be edited there;
// a corrupted file is replaced with this set.
func DefaultProfiles() map[string]Profile {
	return map[string]Profile{
		"en": {
			Code: "en",
			Keywords: []string{
				"shall", "must", "should", "will", "require", "required",
				"requirement", "mandatory", "necessary", "obligatory",
				"ensure", "guarantee", "prohibited", "forbidden",
			},
			PriorityHigh: []string{
				"shall", "must", "critical", "essential", "mandatory",
				"safety", "immediately", "vital",
			},
			PriorityMedium: []string{
				"should", "important", "recommended", "expected", "significant",
			},
			PriorityLow: []string{
				"may", "might", "could", "optional", "desirable", "preferred",
			},
			SecurityKeywords: []string{
				"security", "secure", "encryption", "encrypted",
				"authentication", "authorization", "password", "credential",
				"confidential", "confidentiality", "integrity", "vulnerability",
			},
			Patterns: []PatternDef{
				{"modal", `(?i)\b(?:shall|must|will|should)(?:\s+not)?\s+\p{L}+`},
				{"subject_verb", `(?i)\bthe\s+\p{L}+(?:\s+\p{L}+)?\s+(?:shall|must|will|should)\b`},
				{"capability", `(?i)\b(?:capable\s+of|ability\s+to|able\s+to)\b`},
				{"compliance", `(?i)\b(?:comply\s+with|in\s+accordance\s+with|conforms?\s+to|pursuant\s+to)\b`},
				{"necessity", `(?i)\bit\s+is\s+(?:required|necessary|essential|mandatory)\s+that\b`},
				{"quantified", `(?i)\b(?:at\s+least|at\s+most|no\s+(?:more|less)\s+than|a\s+(?:minimum|maximum)\s+of)\s+\d+|\bbetween\s+\d+\s+and\s+\d+`},
			},
			Abbreviations: []string{
				"mr", "mrs", "ms", "dr", "prof", "etc", "e.g", "i.e", "vs",
				"fig", "no", "inc", "ltd", "co", "approx", "min", "max", "sec",
				"dept", "rev", "para", "ref", "vol",
			},
			Detection: DetectionSignals{
				CommonWords: []string{
					"the", "of", "and", "to", "in", "is", "that", "it", "for",
					"with", "as", "on", "be", "by", "this", "are", "or", "from",
					"at", "which", "not", "have", "has", "all", "was", "can",
				},
				Trigrams: []string{
					"the", "and", "ing", "ion", "ent", "for", "ati", "ter",
					"tha", "all", "his", "ith", "ver", "ers", "res",
				},
			},
			ModelID: "sentence-en-v1",
		},
		"de": {
			Code: "de",
			Keywords: []string{
				"muss", "müssen", "soll", "sollen", "sollte", "sollten",
				"wird", "werden", "darf", "dürfen", "erforderlich",
				"notwendig", "zwingend", "verpflichtend", "gewährleisten",
				"sicherstellen", "verboten", "untersagt",
			},
			PriorityHigh: []string{
				"muss", "müssen", "zwingend", "kritisch", "wesentlich",
				"verpflichtend", "unverzüglich", "sicherheit",
			},
			PriorityMedium: []string{
				"soll", "sollen", "sollte", "wichtig", "empfohlen", "erwartet",
			},
			PriorityLow: []string{
				"kann", "können", "könnte", "optional", "wünschenswert",
			},
			SecurityKeywords: []string{
				"sicherheit", "verschlüsselung", "verschlüsselt",
				"authentifizierung", "autorisierung", "passwort",
				"vertraulich", "vertraulichkeit", "integrität", "zugriffsschutz",
			},
			Patterns: []PatternDef{
				{"modal", `(?i)\b(?:muss|müssen|soll(?:en|te|ten)?|wird|werden|darf\s+nicht|dürfen\s+nicht)\b`},
				{"subject_verb", `(?i)\b(?:das|die|der)\s+\p{L}+\s+(?:muss|soll|wird|darf)\b`},
				{"capability", `(?i)\b(?:in\s+der\s+lage\s+sein|fähig(?:keit)?)\b`},
				{"compliance", `(?i)\b(?:gemäß|entsprechend|in\s+übereinstimmung\s+mit|konform\s+(?:zu|mit))\b`},
				{"necessity", `(?i)\bes\s+ist\s+(?:erforderlich|notwendig|zwingend)\b`},
				{"quantified", `(?i)\b(?:mindestens|höchstens|maximal|minimal)\s+\d+|\bzwischen\s+\d+\s+und\s+\d+`},
			},
			Abbreviations: []string{
				"z.b", "bzw", "ca", "nr", "abb", "usw", "vgl", "dr", "prof",
				"ggf", "evtl", "inkl", "max", "min", "abs", "kap", "s", "u.a",
			},
			Detection: DetectionSignals{
				SpecialChars: "äöüß",
				CommonWords: []string{
					"der", "die", "das", "und", "ist", "von", "mit", "für",
					"auf", "den", "des", "ein", "eine", "nicht", "werden",
					"sich", "auch", "nach", "bei", "aus", "dem", "oder", "zur",
					"über", "wenn", "sind",
				},
				Trigrams: []string{
					"der", "ein", "ich", "sch", "und", "die", "che", "end",
					"gen", "ung", "cht", "den", "ine", "ver", "ten",
				},
			},
			ModelID: "sentence-de-v1",
		},
		"fr": {
			Code: "fr",
			Keywords: []string{
				"doit", "doivent", "devra", "devront", "devrait", "devraient",
				"exigé", "exigence", "obligatoire", "nécessaire", "requis",
				"requise", "garantir", "assurer", "interdit",
			},
			PriorityHigh: []string{
				"doit", "doivent", "devra", "critique", "essentiel",
				"obligatoire", "immédiatement", "sécurité",
			},
			PriorityMedium: []string{
				"devrait", "devraient", "important", "recommandé", "attendu",
			},
			PriorityLow: []string{
				"peut", "peuvent", "pourrait", "optionnel", "souhaitable",
			},
			SecurityKeywords: []string{
				"sécurité", "chiffrement", "chiffré", "authentification",
				"autorisation", "mot de passe", "confidentiel",
				"confidentialité", "intégrité", "vulnérabilité",
			},
			Patterns: []PatternDef{
				{"modal", `(?i)\b(?:doit|doivent|devra|devront|devrait|ne\s+doit\s+pas)\b`},
				{"subject_verb", `(?i)\b(?:le|la|les)\s+\p{L}+\s+(?:doit|doivent|devra|devront)\b`},
				{"capability", `(?i)\b(?:capable\s+de|capacité\s+(?:de|à)|en\s+mesure\s+de)\b`},
				{"compliance", `(?i)\b(?:conform(?:e|ément)\s+(?:à|aux)|en\s+accord\s+avec|respecter?\s+l)`},
				{"necessity", `(?i)\bil\s+est\s+(?:requis|nécessaire|obligatoire|exigé)\s+(?:que|de)\b`},
				{"quantified", `(?i)\b(?:au\s+moins|au\s+plus|au\s+maximum|au\s+minimum)\s+\d+|\bentre\s+\d+\s+et\s+\d+`},
			},
			Abbreviations: []string{
				"m", "mme", "mlle", "dr", "prof", "ex", "fig", "p", "cf",
				"env", "etc", "art", "chap", "réf", "vol",
			},
			Detection: DetectionSignals{
				SpecialChars: "éèêëàâîïôùûçœ",
				CommonWords: []string{
					"le", "la", "les", "de", "des", "du", "et", "est", "un",
					"une", "dans", "pour", "que", "qui", "sur", "avec", "par",
					"pas", "sont", "tous", "aux", "être", "cette", "ce", "il", "au",
				},
				Trigrams: []string{
					"les", "ent", "des", "que", "ion", "eur", "ait", "our",
					"ant", "tio", "men", "lle", "con", "ons", "tre",
				},
			},
			ModelID: "sentence-fr-v1",
		},
		"es": {
			Code: "es",
			Keywords: []string{
				"debe", "deben", "deberá", "deberán", "debería", "deberían",
				"obligatorio", "obligatoria", "necesario", "necesaria",
				"requerido", "requerida", "requisito", "garantizar",
				"asegurar", "prohibido",
			},
			PriorityHigh: []string{
				"debe", "deben", "deberá", "crítico", "esencial",
				"obligatorio", "inmediatamente", "seguridad",
			},
			PriorityMedium: []string{
				"debería", "deberían", "importante", "recomendado", "esperado",
			},
			PriorityLow: []string{
				"puede", "pueden", "podría", "opcional", "deseable",
			},
			SecurityKeywords: []string{
				"seguridad", "cifrado", "cifrada", "autenticación",
				"autorización", "contraseña", "confidencial",
				"confidencialidad", "integridad", "vulnerabilidad",
			},
			Patterns: []PatternDef{
				{"modal", `(?i)\b(?:debe(?:n|rá|rán|ría|rían)?|no\s+debe)\b`},
				{"subject_verb", `(?i)\b(?:el|la|los|las)\s+\p{L}+\s+debe(?:n|rá|rán)?\b`},
				{"capability", `(?i)\b(?:capaz\s+de|capacidad\s+(?:de|para))\b`},
				{"compliance", `(?i)\b(?:cumplir\s+con|de\s+acuerdo\s+con|de\s+conformidad\s+con|conforme\s+a)\b`},
				{"necessity", `(?i)\bes\s+(?:necesario|obligatorio|imprescindible)\s+que\b`},
				{"quantified", `(?i)\b(?:al\s+menos|como\s+(?:mínimo|máximo))\s+\d+|\bentre\s+\d+\s+y\s+\d+`},
			},
			Abbreviations: []string{
				"sr", "sra", "srta", "dr", "dra", "ej", "fig", "pág", "núm",
				"aprox", "etc", "art", "cap", "ref", "vol",
			},
			Detection: DetectionSignals{
				SpecialChars: "áéíóúñ¿¡",
				CommonWords: []string{
					"el", "la", "los", "las", "de", "del", "que", "y", "en",
					"un", "una", "es", "por", "con", "para", "se", "no", "su",
					"al", "como", "más", "o", "todos", "este", "esta", "son",
				},
				Trigrams: []string{
					"que", "ión", "los", "ado", "ent", "con", "est", "ien",
					"cia", "nte", "par", "ara", "del", "aci", "dad",
				},
			},
			ModelID: "sentence-es-v1",
		},
		"it": {
			Code: "it",
			Keywords: []string{
				"deve", "devono", "dovrà", "dovranno", "dovrebbe", "dovrebbero",
				"obbligatorio", "obbligatoria", "necessario", "necessaria",
				"richiesto", "richiesta", "requisito", "garantire",
				"assicurare", "vietato",
			},
			PriorityHigh: []string{
				"deve", "devono", "dovrà", "critico", "essenziale",
				"obbligatorio", "immediatamente", "sicurezza",
			},
			PriorityMedium: []string{
				"dovrebbe", "dovrebbero", "importante", "raccomandato", "previsto",
			},
			PriorityLow: []string{
				"può", "possono", "potrebbe", "opzionale", "auspicabile",
			},
			SecurityKeywords: []string{
				"sicurezza", "crittografia", "cifrato", "autenticazione",
				"autorizzazione", "password", "riservato", "riservatezza",
				"integrità", "vulnerabilità",
			},
			Patterns: []PatternDef{
				{"modal", `(?i)\b(?:deve|devono|dovrà|dovranno|dovrebbe|non\s+deve)\b`},
				{"subject_verb", `(?i)\b(?:il|la|lo|i|le)\s+\p{L}+\s+(?:deve|devono|dovrà)\b`},
				{"capability", `(?i)\b(?:in\s+grado\s+di|capace\s+di|capacità\s+di)\b`},
				{"compliance", `(?i)\b(?:conform(?:e|emente)\s+a|in\s+conformità\s+(?:a|con)|rispettare\s+l)`},
				{"necessity", `(?i)\bè\s+(?:necessario|obbligatorio|richiesto)\s+che\b`},
				{"quantified", `(?i)\b(?:almeno|al\s+massimo|al\s+minimo)\s+\d+|\btra\s+\d+\s+e\s+\d+`},
			},
			Abbreviations: []string{
				"sig", "sig.ra", "dott", "prof", "es", "fig", "pag", "n",
				"ca", "ecc", "art", "cap", "rif", "vol",
			},
			Detection: DetectionSignals{
				SpecialChars: "àèéìòù",
				CommonWords: []string{
					"il", "la", "lo", "le", "gli", "di", "del", "della", "che",
					"e", "in", "un", "una", "è", "per", "con", "non", "si",
					"al", "come", "più", "tutti", "questo", "questa", "sono", "dei",
				},
				Trigrams: []string{
					"che", "ent", "ion", "del", "lla", "per", "ato", "con",
					"zio", "one", "ess", "nte", "ale", "gli", "are",
				},
			},
			ModelID: "sentence-it-v1",
		},
	}
}

// DefaultPatternDefs returns the built-in pattern tables keyed by language.
func DefaultPatternDefs() map[string][]PatternDef {
	out := make(map[string][]PatternDef)
	for code, p := range DefaultProfiles() {
		out[code] = p.Patterns
	}
	return out
}

// DefaultSignals returns the built-in detection signal tables keyed by
// language.
func DefaultSignals() map[string]DetectionSignals {
	out := make(map[string]DetectionSignals)
	for code, p := range DefaultProfiles() {
		out[code] = p.Detection
	}
	return out
}
