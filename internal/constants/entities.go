package constants

// NamedEntities maps HTML character reference names to their decoded text.
// The full WHATWG named character reference table carries 2,125 entries;
// this table is a curated subset covering the entire legacy (semicolon
// optional) set plus a representative sample of modern references (Greek
// letters, mathematical operators, arrows, typography); it holds no references
// to code points outside the Basic Multilingual Plane.
// Entries are keyed exactly as they appear after the leading "&", so case
// matters ("AElig" and "aelig" are distinct entries).
var NamedEntities = map[string]string{
	// Legacy Latin-1 / markup entities (semicolon optional in text content).
	"AElig":  "Æ",
	"AMP":    "&",
	"Aacute": "Á",
	"Acirc":  "Â",
	"Agrave": "À",
	"Aring":  "Å",
	"Atilde": "Ã",
	"Auml":   "Ä",
	"COPY":   "©",
	"Ccedil": "Ç",
	"ETH":    "Ð",
	"Eacute": "É",
	"Ecirc":  "Ê",
	"Egrave": "È",
	"Euml":   "Ë",
	"GT":     ">",
	"Iacute": "Í",
	"Icirc":  "Î",
	"Igrave": "Ì",
	"Iuml":   "Ï",
	"LT":     "<",
	"Ntilde": "Ñ",
	"Oacute": "Ó",
	"Ocirc":  "Ô",
	"Ograve": "Ò",
	"Oslash": "Ø",
	"Otilde": "Õ",
	"Ouml":   "Ö",
	"QUOT":   "\"",
	"REG":    "®",
	"THORN":  "Þ",
	"Uacute": "Ú",
	"Ucirc":  "Û",
	"Ugrave": "Ù",
	"Uuml":   "Ü",
	"Yacute": "Ý",
	"aacute": "á",
	"acirc":  "â",
	"acute":  "´",
	"aelig":  "æ",
	"agrave": "à",
	"amp":    "&",
	"aring":  "å",
	"atilde": "ã",
	"auml":   "ä",
	"brvbar": "¦",
	"ccedil": "ç",
	"cedil":  "¸",
	"cent":   "¢",
	"copy":   "©",
	"curren": "¤",
	"deg":    "°",
	"divide": "÷",
	"eacute": "é",
	"ecirc":  "ê",
	"egrave": "è",
	"eth":    "ð",
	"euml":   "ë",
	"frac12": "½",
	"frac14": "¼",
	"frac34": "¾",
	"gt":     ">",
	"iacute": "í",
	"icirc":  "î",
	"iexcl":  "¡",
	"igrave": "ì",
	"iquest": "¿",
	"iuml":   "ï",
	"laquo":  "«",
	"lt":     "<",
	"macr":   "¯",
	"micro":  "µ",
	"middot": "·",
	"nbsp":   " ",
	"not":    "¬",
	"ntilde": "ñ",
	"oacute": "ó",
	"ocirc":  "ô",
	"ograve": "ò",
	"ordf":   "ª",
	"ordm":   "º",
	"oslash": "ø",
	"otilde": "õ",
	"ouml":   "ö",
	"para":   "¶",
	"plusmn": "±",
	"pound":  "£",
	"quot":   "\"",
	"raquo":  "»",
	"reg":    "®",
	"sect":   "§",
	"shy":    "­",
	"sup1":   "¹",
	"sup2":   "²",
	"sup3":   "³",
	"szlig":  "ß",
	"thorn":  "þ",
	"times":  "×",
	"uacute": "ú",
	"ucirc":  "û",
	"ugrave": "ù",
	"uml":    "¨",
	"uuml":   "ü",
	"yacute": "ý",
	"yen":    "¥",
	"yuml":   "ÿ",

	// Modern entities requiring a trailing semicolon.
	"Alpha":          "Α",
	"alpha":          "α",
	"Beta":           "Β",
	"beta":           "β",
	"Gamma":          "Γ",
	"gamma":          "γ",
	"Delta":          "Δ",
	"delta":          "δ",
	"pi":             "π",
	"mu":             "μ",
	"nu":             "ν",
	"lang":           "⟨",
	"rang":           "⟩",
	"notin":          "∉",
	"prod":           "∏",
	"sum":            "∑",
	"infin":          "∞",
	"ne":             "≠",
	"le":             "≤",
	"ge":             "≥",
	"larr":           "←",
	"rarr":           "→",
	"uarr":           "↑",
	"darr":           "↓",
	"harr":           "↔",
	"hellip":         "…",
	"mdash":          "—",
	"ndash":          "–",
	"lsquo":          "‘",
	"rsquo":          "’",
	"ldquo":          "“",
	"rdquo":          "”",
	"bull":           "•",
	"trade":          "™",
	"euro":           "€",
	"spades":         "♠",
	"hearts":         "♥",
	"clubs":          "♣",
	"diams":          "♦",
	"NewLine":        "\n",
	"Tab":            "\t",
	"ZeroWidthSpace":  "​",
	"NonBreakingSpace": " ",
	"DoubleLeftTee":  "⫤",
	"TripleDot":      "⃛",

	// Entities that decode to a base character combined with a following
	// combining mark, exercised by the multi-character decode path.
	"NotEqualTilde": "≂̸",
	"acE":           "∾̳",

	// Full Greek alphabet (HTML4 §24 symbol set), beyond the handful of
	// letters already covered above.
	"Epsilon": "Ε", "epsilon": "ε",
	"Zeta": "Ζ", "zeta": "ζ",
	"Eta": "Η", "eta": "η",
	"Theta": "Θ", "theta": "θ",
	"Iota": "Ι", "iota": "ι",
	"Kappa": "Κ", "kappa": "κ",
	"Lambda": "Λ", "lambda": "λ",
	"Xi": "Ξ", "xi": "ξ",
	"Omicron": "Ο", "omicron": "ο",
	"Rho": "Ρ", "rho": "ρ",
	"Sigma": "Σ", "sigma": "σ", "sigmaf": "ς",
	"Tau": "Τ", "tau": "τ",
	"Upsilon": "Υ", "upsilon": "υ",
	"Phi": "Φ", "phi": "φ",
	"Chi": "Χ", "chi": "χ",
	"Psi": "Ψ", "psi": "ψ",
	"Omega": "Ω", "omega": "ω",
	"thetasym": "ϑ", "upsih": "ϒ", "piv": "ϖ",

	// General mathematical/logical operators beyond the handful above.
	"forall": "∀", "part": "∂", "exist": "∃", "empty": "∅",
	"nabla": "∇", "isin": "∈", "ni": "∋",
	"minus": "−", "lowast": "∗", "radic": "√", "prop": "∝",
	"ang": "∠", "and": "∧", "or": "∨", "cap": "∩", "cup": "∪",
	"int": "∫", "there4": "∴", "sim": "∼", "cong": "≅", "asymp": "≈",
	"equiv": "≡", "sub": "⊂", "sup": "⊃", "nsub": "⊄",
	"sube": "⊆", "supe": "⊇", "oplus": "⊕", "otimes": "⊗",
	"perp": "⊥", "sdot": "⋅",

	// Double-struck/diagonal arrows beyond the four cardinal directions
	// already covered above.
	"crarr": "↵",
	"lArr":  "⇐", "uArr": "⇑", "rArr": "⇒", "dArr": "⇓", "hArr": "⇔",

	// Spacing, punctuation, and typography entities.
	"circ": "ˆ", "tilde": "˜",
	"ensp": " ", "emsp": " ", "thinsp": " ",
	"zwnj": "‌", "zwj": "‍", "lrm": "‎", "rlm": "‏",
	"sbquo": "‚", "bdquo": "„",
	"dagger": "†", "Dagger": "‡", "permil": "‰",
	"lsaquo": "‹", "rsaquo": "›", "oline": "‾", "frasl": "⁄",

	// Letterlike symbols.
	"weierp": "℘", "image": "ℑ", "real": "ℜ", "alefsym": "ℵ",

	// Latin Extended-A entities used by legacy Western-European markup.
	"OElig": "Œ", "oelig": "œ",
	"Scaron": "Š", "scaron": "š",
	"Yuml": "Ÿ", "fnof": "ƒ",
}

// LegacyEntities is the subset of NamedEntities that the specification
// permits to appear without a trailing semicolon in text content (the
// historical HTML4 character entity set). Matching against this set backs
// the tokenizer's "named character reference without semicolon" parse-error
// path.
var LegacyEntities = map[string]bool{
	"AElig": true, "AMP": true, "Aacute": true, "Acirc": true, "Agrave": true,
	"Aring": true, "Atilde": true, "Auml": true, "COPY": true, "Ccedil": true,
	"ETH": true, "Eacute": true, "Ecirc": true, "Egrave": true, "Euml": true,
	"GT": true, "Iacute": true, "Icirc": true, "Igrave": true, "Iuml": true,
	"LT": true, "Ntilde": true, "Oacute": true, "Ocirc": true, "Ograve": true,
	"Oslash": true, "Otilde": true, "Ouml": true, "QUOT": true, "REG": true,
	"THORN": true, "Uacute": true, "Ucirc": true, "Ugrave": true, "Uuml": true,
	"Yacute": true, "aacute": true, "acirc": true, "acute": true, "aelig": true,
	"agrave": true, "amp": true, "aring": true, "atilde": true, "auml": true,
	"brvbar": true, "ccedil": true, "cedil": true, "cent": true, "copy": true,
	"curren": true, "deg": true, "divide": true, "eacute": true, "ecirc": true,
	"egrave": true, "eth": true, "euml": true, "frac12": true, "frac14": true,
	"frac34": true, "gt": true, "iacute": true, "icirc": true, "iexcl": true,
	"igrave": true, "iquest": true, "iuml": true, "laquo": true, "lt": true,
	"macr": true, "micro": true, "middot": true, "nbsp": true, "not": true,
	"ntilde": true, "oacute": true, "ocirc": true, "ograve": true, "ordf": true,
	"ordm": true, "oslash": true, "otilde": true, "ouml": true, "para": true,
	"plusmn": true, "pound": true, "quot": true, "raquo": true, "reg": true,
	"sect": true, "shy": true, "sup1": true, "sup2": true, "sup3": true,
	"szlig": true, "thorn": true, "times": true, "uacute": true, "ucirc": true,
	"ugrave": true, "uml": true, "uuml": true, "yacute": true, "yen": true,
	"yuml": true,
}

// NumericReplacements maps the Windows-1252 byte values in the 0x80-0x9F
// range to the Unicode code points the specification requires numeric
// character references to resolve to, instead of the C1 control codes those
// byte values would otherwise name.
var NumericReplacements = map[int]rune{
	0x00: '�',
	0x80: '€',
	0x82: '‚',
	0x83: 'ƒ',
	0x84: '„',
	0x85: '…',
	0x86: '†',
	0x87: '‡',
	0x88: 'ˆ',
	0x89: '‰',
	0x8A: 'Š',
	0x8B: '‹',
	0x8C: 'Œ',
	0x8E: 'Ž',
	0x91: '‘',
	0x92: '’',
	0x93: '“',
	0x94: '”',
	0x95: '•',
	0x96: '–',
	0x97: '—',
	0x98: '˜',
	0x99: '™',
	0x9A: 'š',
	0x9B: '›',
	0x9C: 'œ',
	0x9E: 'ž',
	0x9F: 'Ÿ',
}
