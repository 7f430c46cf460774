package iso639

// The table below follows the published ISO 639-1 assignments. Constants are
// named after the English language name; the value is the canonical code.
const (
	Abkhazian        LanguageCode = "ab"
	Afar             LanguageCode = "aa"
	Afrikaans        LanguageCode = "af"
	Akan             LanguageCode = "ak"
	Albanian         LanguageCode = "sq"
	Amharic          LanguageCode = "am"
	Arabic           LanguageCode = "ar"
	Aragonese        LanguageCode = "an"
	Armenian         LanguageCode = "hy"
	Assamese         LanguageCode = "as"
	Avaric           LanguageCode = "av"
	Avestan          LanguageCode = "ae"
	Aymara           LanguageCode = "ay"
	Azerbaijani      LanguageCode = "az"
	Bambara          LanguageCode = "bm"
	Bashkir          LanguageCode = "ba"
	Basque           LanguageCode = "eu"
	Belarusian       LanguageCode = "be"
	Bengali          LanguageCode = "bn"
	Bihari           LanguageCode = "bh"
	Bislama          LanguageCode = "bi"
	Bosnian          LanguageCode = "bs"
	Breton           LanguageCode = "br"
	Bulgarian        LanguageCode = "bg"
	Burmese          LanguageCode = "my"
	Catalan          LanguageCode = "ca"
	Chamorro         LanguageCode = "ch"
	Chechen          LanguageCode = "ce"
	Chichewa         LanguageCode = "ny"
	Chinese          LanguageCode = "zh"
	Chuvash          LanguageCode = "cv"
	Cornish          LanguageCode = "kw"
	Corsican         LanguageCode = "co"
	Cree             LanguageCode = "cr"
	Croatian         LanguageCode = "hr"
	Czech            LanguageCode = "cs"
	Danish           LanguageCode = "da"
	Divehi           LanguageCode = "dv"
	Dutch            LanguageCode = "nl"
	Dzongkha         LanguageCode = "dz"
	English          LanguageCode = "en"
	Esperanto        LanguageCode = "eo"
	Estonian         LanguageCode = "et"
	Ewe              LanguageCode = "ee"
	Faroese          LanguageCode = "fo"
	Fijian           LanguageCode = "fj"
	Finnish          LanguageCode = "fi"
	French           LanguageCode = "fr"
	Fulah            LanguageCode = "ff"
	Galician         LanguageCode = "gl"
	Georgian         LanguageCode = "ka"
	German           LanguageCode = "de"
	Greek            LanguageCode = "el"
	Guarani          LanguageCode = "gn"
	Gujarati         LanguageCode = "gu"
	Haitian          LanguageCode = "ht"
	Hausa            LanguageCode = "ha"
	Hebrew           LanguageCode = "he"
	Herero           LanguageCode = "hz"
	Hindi            LanguageCode = "hi"
	HiriMotu         LanguageCode = "ho"
	Hungarian        LanguageCode = "hu"
	Interlingua      LanguageCode = "ia"
	Indonesian       LanguageCode = "id"
	Interlingue      LanguageCode = "ie"
	Irish            LanguageCode = "ga"
	Igbo             LanguageCode = "ig"
	Inupiaq          LanguageCode = "ik"
	Ido              LanguageCode = "io"
	Icelandic        LanguageCode = "is"
	Italian          LanguageCode = "it"
	Inuktitut        LanguageCode = "iu"
	Japanese         LanguageCode = "ja"
	Javanese         LanguageCode = "jv"
	Kalaallisut      LanguageCode = "kl"
	Kannada          LanguageCode = "kn"
	Kanuri           LanguageCode = "kr"
	Kashmiri         LanguageCode = "ks"
	Kazakh           LanguageCode = "kk"
	CentralKhmer     LanguageCode = "km"
	Kikuyu           LanguageCode = "ki"
	Kinyarwanda      LanguageCode = "rw"
	Kirghiz          LanguageCode = "ky"
	Komi             LanguageCode = "kv"
	Kongo            LanguageCode = "kg"
	Korean           LanguageCode = "ko"
	Kurdish          LanguageCode = "ku"
	Kuanyama         LanguageCode = "kj"
	Latin            LanguageCode = "la"
	Luxembourgish    LanguageCode = "lb"
	Ganda            LanguageCode = "lg"
	Limburgan        LanguageCode = "li"
	Lingala          LanguageCode = "ln"
	Lao              LanguageCode = "lo"
	Lithuanian       LanguageCode = "lt"
	LubaKatanga      LanguageCode = "lu"
	Latvian          LanguageCode = "lv"
	Manx             LanguageCode = "gv"
	Macedonian       LanguageCode = "mk"
	Malagasy         LanguageCode = "mg"
	Malay            LanguageCode = "ms"
	Malayalam        LanguageCode = "ml"
	Maltese          LanguageCode = "mt"
	Maori            LanguageCode = "mi"
	Marathi          LanguageCode = "mr"
	Marshallese      LanguageCode = "mh"
	Mongolian        LanguageCode = "mn"
	Nauru            LanguageCode = "na"
	Navajo           LanguageCode = "nv"
	NorthNdebele     LanguageCode = "nd"
	Nepali           LanguageCode = "ne"
	Ndonga           LanguageCode = "ng"
	NorwegianBokmal  LanguageCode = "nb"
	NorwegianNynorsk LanguageCode = "nn"
	Norwegian        LanguageCode = "no"
	SichuanYi        LanguageCode = "ii"
	SouthNdebele     LanguageCode = "nr"
	Occitan          LanguageCode = "oc"
	Ojibwa           LanguageCode = "oj"
	ChurchSlavic     LanguageCode = "cu"
	Oromo            LanguageCode = "om"
	Oriya            LanguageCode = "or"
	Ossetian         LanguageCode = "os"
	Punjabi          LanguageCode = "pa"
	Pali             LanguageCode = "pi"
	Persian          LanguageCode = "fa"
	Polish           LanguageCode = "pl"
	Pashto           LanguageCode = "ps"
	Portuguese       LanguageCode = "pt"
	Quechua          LanguageCode = "qu"
	Romansh          LanguageCode = "rm"
	Rundi            LanguageCode = "rn"
	Romanian         LanguageCode = "ro"
	Russian          LanguageCode = "ru"
	Sanskrit         LanguageCode = "sa"
	Sardinian        LanguageCode = "sc"
	Sindhi           LanguageCode = "sd"
	NorthernSami     LanguageCode = "se"
	Samoan           LanguageCode = "sm"
	Sango            LanguageCode = "sg"
	Serbian          LanguageCode = "sr"
	Gaelic           LanguageCode = "gd"
	Shona            LanguageCode = "sn"
	Sinhala          LanguageCode = "si"
	Slovak           LanguageCode = "sk"
	Slovenian        LanguageCode = "sl"
	Somali           LanguageCode = "so"
	SouthernSotho    LanguageCode = "st"
	Spanish          LanguageCode = "es"
	Sundanese        LanguageCode = "su"
	Swahili          LanguageCode = "sw"
	Swati            LanguageCode = "ss"
	Swedish          LanguageCode = "sv"
	Tamil            LanguageCode = "ta"
	Telugu           LanguageCode = "te"
	Tajik            LanguageCode = "tg"
	Thai             LanguageCode = "th"
	Tigrinya         LanguageCode = "ti"
	Tibetan          LanguageCode = "bo"
	Turkmen          LanguageCode = "tk"
	Tagalog          LanguageCode = "tl"
	Tswana           LanguageCode = "tn"
	Tonga            LanguageCode = "to"
	Turkish          LanguageCode = "tr"
	Tsonga           LanguageCode = "ts"
	Tatar            LanguageCode = "tt"
	Twi              LanguageCode = "tw"
	Tahitian         LanguageCode = "ty"
	Uighur           LanguageCode = "ug"
	Ukrainian        LanguageCode = "uk"
	Urdu             LanguageCode = "ur"
	Uzbek            LanguageCode = "uz"
	Venda            LanguageCode = "ve"
	Vietnamese       LanguageCode = "vi"
	Volapuk          LanguageCode = "vo"
	Walloon          LanguageCode = "wa"
	Welsh            LanguageCode = "cy"
	Wolof            LanguageCode = "wo"
	WesternFrisian   LanguageCode = "fy"
	Xhosa            LanguageCode = "xh"
	Yiddish          LanguageCode = "yi"
	Yoruba           LanguageCode = "yo"
	Zhuang           LanguageCode = "za"
	Zulu             LanguageCode = "zu"
)

type languageInfo struct {
	name   string
	family string
}

var languages = map[LanguageCode]languageInfo{
	Abkhazian:        {"Abkhazian", "Northwest Caucasian"},
	Afar:             {"Afar", "Afro-Asiatic"},
	Afrikaans:        {"Afrikaans", "Indo-European"},
	Akan:             {"Akan", "Niger–Congo"},
	Albanian:         {"Albanian", "Indo-European"},
	Amharic:          {"Amharic", "Afro-Asiatic"},
	Arabic:           {"Arabic", "Afro-Asiatic"},
	Aragonese:        {"Aragonese", "Indo-European"},
	Armenian:         {"Armenian", "Indo-European"},
	Assamese:         {"Assamese", "Indo-European"},
	Avaric:           {"Avaric", "Northeast Caucasian"},
	Avestan:          {"Avestan", "Indo-European"},
	Aymara:           {"Aymara", "Aymaran"},
	Azerbaijani:      {"Azerbaijani", "Turkic"},
	Bambara:          {"Bambara", "Niger–Congo"},
	Bashkir:          {"Bashkir", "Turkic"},
	Basque:           {"Basque", "Language isolate"},
	Belarusian:       {"Belarusian", "Indo-European"},
	Bengali:          {"Bengali", "Indo-European"},
	Bihari:           {"Bihari languages", "Indo-European"},
	Bislama:          {"Bislama", "Creole"},
	Bosnian:          {"Bosnian", "Indo-European"},
	Breton:           {"Breton", "Indo-European"},
	Bulgarian:        {"Bulgarian", "Indo-European"},
	Burmese:          {"Burmese", "Sino-Tibetan"},
	Catalan:          {"Catalan", "Indo-European"},
	Chamorro:         {"Chamorro", "Austronesian"},
	Chechen:          {"Chechen", "Northeast Caucasian"},
	Chichewa:         {"Chichewa", "Niger–Congo"},
	Chinese:          {"Chinese", "Sino-Tibetan"},
	Chuvash:          {"Chuvash", "Turkic"},
	Cornish:          {"Cornish", "Indo-European"},
	Corsican:         {"Corsican", "Indo-European"},
	Cree:             {"Cree", "Algonquian"},
	Croatian:         {"Croatian", "Indo-European"},
	Czech:            {"Czech", "Indo-European"},
	Danish:           {"Danish", "Indo-European"},
	Divehi:           {"Divehi", "Indo-European"},
	Dutch:            {"Dutch", "Indo-European"},
	Dzongkha:         {"Dzongkha", "Sino-Tibetan"},
	English:          {"English", "Indo-European"},
	Esperanto:        {"Esperanto", "Constructed"},
	Estonian:         {"Estonian", "Uralic"},
	Ewe:              {"Ewe", "Niger–Congo"},
	Faroese:          {"Faroese", "Indo-European"},
	Fijian:           {"Fijian", "Austronesian"},
	Finnish:          {"Finnish", "Uralic"},
	French:           {"French", "Indo-European"},
	Fulah:            {"Fulah", "Niger–Congo"},
	Galician:         {"Galician", "Indo-European"},
	Georgian:         {"Georgian", "Kartvelian"},
	German:           {"German", "Indo-European"},
	Greek:            {"Greek", "Indo-European"},
	Guarani:          {"Guarani", "Tupian"},
	Gujarati:         {"Gujarati", "Indo-European"},
	Haitian:          {"Haitian", "Creole"},
	Hausa:            {"Hausa", "Afro-Asiatic"},
	Hebrew:           {"Hebrew", "Afro-Asiatic"},
	Herero:           {"Herero", "Niger–Congo"},
	Hindi:            {"Hindi", "Indo-European"},
	HiriMotu:         {"Hiri Motu", "Austronesian"},
	Hungarian:        {"Hungarian", "Uralic"},
	Interlingua:      {"Interlingua", "Constructed"},
	Indonesian:       {"Indonesian", "Austronesian"},
	Interlingue:      {"Interlingue", "Constructed"},
	Irish:            {"Irish", "Indo-European"},
	Igbo:             {"Igbo", "Niger–Congo"},
	Inupiaq:          {"Inupiaq", "Eskimo–Aleut"},
	Ido:              {"Ido", "Constructed"},
	Icelandic:        {"Icelandic", "Indo-European"},
	Italian:          {"Italian", "Indo-European"},
	Inuktitut:        {"Inuktitut", "Eskimo–Aleut"},
	Japanese:         {"Japanese", "Japonic"},
	Javanese:         {"Javanese", "Austronesian"},
	Kalaallisut:      {"Kalaallisut", "Eskimo–Aleut"},
	Kannada:          {"Kannada", "Dravidian"},
	Kanuri:           {"Kanuri", "Nilo-Saharan"},
	Kashmiri:         {"Kashmiri", "Indo-European"},
	Kazakh:           {"Kazakh", "Turkic"},
	CentralKhmer:     {"Central Khmer", "Austroasiatic"},
	Kikuyu:           {"Kikuyu", "Niger–Congo"},
	Kinyarwanda:      {"Kinyarwanda", "Niger–Congo"},
	Kirghiz:          {"Kirghiz", "Turkic"},
	Komi:             {"Komi", "Uralic"},
	Kongo:            {"Kongo", "Niger–Congo"},
	Korean:           {"Korean", "Koreanic"},
	Kurdish:          {"Kurdish", "Indo-European"},
	Kuanyama:         {"Kuanyama", "Niger–Congo"},
	Latin:            {"Latin", "Indo-European"},
	Luxembourgish:    {"Luxembourgish", "Indo-European"},
	Ganda:            {"Ganda", "Niger–Congo"},
	Limburgan:        {"Limburgan", "Indo-European"},
	Lingala:          {"Lingala", "Niger–Congo"},
	Lao:              {"Lao", "Tai–Kadai"},
	Lithuanian:       {"Lithuanian", "Indo-European"},
	LubaKatanga:      {"Luba-Katanga", "Niger–Congo"},
	Latvian:          {"Latvian", "Indo-European"},
	Manx:             {"Manx", "Indo-European"},
	Macedonian:       {"Macedonian", "Indo-European"},
	Malagasy:         {"Malagasy", "Austronesian"},
	Malay:            {"Malay", "Austronesian"},
	Malayalam:        {"Malayalam", "Dravidian"},
	Maltese:          {"Maltese", "Afro-Asiatic"},
	Maori:            {"Maori", "Austronesian"},
	Marathi:          {"Marathi", "Indo-European"},
	Marshallese:      {"Marshallese", "Austronesian"},
	Mongolian:        {"Mongolian", "Mongolic"},
	Nauru:            {"Nauru", "Austronesian"},
	Navajo:           {"Navajo", "Dené–Yeniseian"},
	NorthNdebele:     {"North Ndebele", "Niger–Congo"},
	Nepali:           {"Nepali", "Indo-European"},
	Ndonga:           {"Ndonga", "Niger–Congo"},
	NorwegianBokmal:  {"Norwegian Bokmål", "Indo-European"},
	NorwegianNynorsk: {"Norwegian Nynorsk", "Indo-European"},
	Norwegian:        {"Norwegian", "Indo-European"},
	SichuanYi:        {"Sichuan Yi", "Sino-Tibetan"},
	SouthNdebele:     {"South Ndebele", "Niger–Congo"},
	Occitan:          {"Occitan", "Indo-European"},
	Ojibwa:           {"Ojibwa", "Algonquian"},
	ChurchSlavic:     {"Church Slavic", "Indo-European"},
	Oromo:            {"Oromo", "Afro-Asiatic"},
	Oriya:            {"Oriya", "Indo-European"},
	Ossetian:         {"Ossetian", "Indo-European"},
	Punjabi:          {"Punjabi", "Indo-European"},
	Pali:             {"Pali", "Indo-European"},
	Persian:          {"Persian", "Indo-European"},
	Polish:           {"Polish", "Indo-European"},
	Pashto:           {"Pashto", "Indo-European"},
	Portuguese:       {"Portuguese", "Indo-European"},
	Quechua:          {"Quechua", "Quechuan"},
	Romansh:          {"Romansh", "Indo-European"},
	Rundi:            {"Rundi", "Niger–Congo"},
	Romanian:         {"Romanian", "Indo-European"},
	Russian:          {"Russian", "Indo-European"},
	Sanskrit:         {"Sanskrit", "Indo-European"},
	Sardinian:        {"Sardinian", "Indo-European"},
	Sindhi:           {"Sindhi", "Indo-European"},
	NorthernSami:     {"Northern Sami", "Uralic"},
	Samoan:           {"Samoan", "Austronesian"},
	Sango:            {"Sango", "Creole"},
	Serbian:          {"Serbian", "Indo-European"},
	Gaelic:           {"Gaelic", "Indo-European"},
	Shona:            {"Shona", "Niger–Congo"},
	Sinhala:          {"Sinhala", "Indo-European"},
	Slovak:           {"Slovak", "Indo-European"},
	Slovenian:        {"Slovenian", "Indo-European"},
	Somali:           {"Somali", "Afro-Asiatic"},
	SouthernSotho:    {"Southern Sotho", "Niger–Congo"},
	Spanish:          {"Spanish", "Indo-European"},
	Sundanese:        {"Sundanese", "Austronesian"},
	Swahili:          {"Swahili", "Niger–Congo"},
	Swati:            {"Swati", "Niger–Congo"},
	Swedish:          {"Swedish", "Indo-European"},
	Tamil:            {"Tamil", "Dravidian"},
	Telugu:           {"Telugu", "Dravidian"},
	Tajik:            {"Tajik", "Indo-European"},
	Thai:             {"Thai", "Tai–Kadai"},
	Tigrinya:         {"Tigrinya", "Afro-Asiatic"},
	Tibetan:          {"Tibetan", "Sino-Tibetan"},
	Turkmen:          {"Turkmen", "Turkic"},
	Tagalog:          {"Tagalog", "Austronesian"},
	Tswana:           {"Tswana", "Niger–Congo"},
	Tonga:            {"Tonga", "Austronesian"},
	Turkish:          {"Turkish", "Turkic"},
	Tsonga:           {"Tsonga", "Niger–Congo"},
	Tatar:            {"Tatar", "Turkic"},
	Twi:              {"Twi", "Niger–Congo"},
	Tahitian:         {"Tahitian", "Austronesian"},
	Uighur:           {"Uighur", "Turkic"},
	Ukrainian:        {"Ukrainian", "Indo-European"},
	Urdu:             {"Urdu", "Indo-European"},
	Uzbek:            {"Uzbek", "Turkic"},
	Venda:            {"Venda", "Niger–Congo"},
	Vietnamese:       {"Vietnamese", "Austroasiatic"},
	Volapuk:          {"Volapük", "Constructed"},
	Walloon:          {"Walloon", "Indo-European"},
	Welsh:            {"Welsh", "Indo-European"},
	Wolof:            {"Wolof", "Niger–Congo"},
	WesternFrisian:   {"Western Frisian", "Indo-European"},
	Xhosa:            {"Xhosa", "Niger–Congo"},
	Yiddish:          {"Yiddish", "Indo-European"},
	Yoruba:           {"Yoruba", "Niger–Congo"},
	Zhuang:           {"Zhuang", "Tai–Kadai"},
	Zulu:             {"Zulu", "Niger–Congo"},
}
