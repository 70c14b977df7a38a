package rulebook

import "github.com/mythictome/mythic-tome/internal/domain/shared"

// AbilityDescriptions maps class feature and racial trait names to
// their rules text. Character creation resolves features through this
// table; unknown names fall back to a generic line.
var AbilityDescriptions = map[string]string{
	"Druhý dech":           "Ve svém tahu můžeš použít bonusovou akci k obnově HP (1d10 + úroveň bojovníka). Použitelné jednou za krátký/dlouhý odpočinek.",
	"Akční vlna":           "Ve svém tahu můžeš provést jednu dodatečnou akci. Použitelné jednou za krátký/dlouhý odpočinek.",
	"Bojový styl":          "Specializuješ se na určitý styl boje (např. Obrana +1 k OČ, nebo Souboj +2 k poškození jednoruční zbraní).",
	"Mystická obnova":      "Jednou za den si můžeš po krátkém odpočinku obnovit pozice kouzel, jejichž celková úroveň je rovna polovině tvé úrovně kouzelníka.",
	"Sesílání kouzel":      "Schopnost využívat magickou energii k sesílání mocných efektů pomocí tvé inteligence nebo moudrosti.",
	"Nenápadný útok":       "Jednou za tah můžeš udělit extra 1d6 poškození tvoru, kterého zasáhneš útokem s výhodou, nebo pokud je spojenec u cíle.",
	"Zlodějský slang":      "Rozumíš tajnému jazyku zločinců a dokážeš v něm předávat skryté zprávy.",
	"Božský úder":          "Když zasáhneš tvora útokem zbraní na blízko, můžeš utratit pozici kouzla a udělit extra zářivé poškození.",
	"Vkládání rukou":       "Máš zásobu léčivé energie (5x úroveň paladina), kterou můžeš dotykem předat k léčení zranění nebo nemocí.",
	"Oblíbený nepřítel":    "Máš výhodu při stopování a ověřování inteligence o určitém typu tvorů.",
	"Vidění ve tmě":        "Vidíš v šeru jako v jasném světle a ve tmě jako v šeru do vzdálenosti 12 metrů.",
	"Fey původ":            "Máš výhodu při záchranných hodech proti očarování a magie tě nemůže uspat.",
	"Trans":                "Elfové nespí. Místo toho se na 4 hodiny ponoří do hluboké meditace.",
	"Štěstí":               "Když ti padne 1 na d20 při útoku, ověření nebo záchranném hodu, můžeš si hod zopakovat.",
	"Odvážnost":            "Máš výhodu při záchranných hodech proti vystrašení.",
	"Všestrannost":         "Lidé získávají +1 ke všem vlastnostem.",
	"Trpasličí odolnost":   "Máš výhodu při záchraně proti jedu a odolnost vůči jedovému poškození.",
	"Bardův dar":           "Můžeš inspirovať ostatné pomocou d6, ktorú si môžu pridať k hodu.",
	"Průzkumník divočiny":  "Jsi expert na navigaci a přežití v určitém typu terénu.",
}

// SkillMapping links skill names to their governing attribute.
var SkillMapping = map[string]shared.Attribute{
	"Atletika":          shared.AttributeStrength,
	"Akrobacie":         shared.AttributeDexterity,
	"Čachry":            shared.AttributeDexterity,
	"Nenápadnost":       shared.AttributeDexterity,
	"Historie":          shared.AttributeIntelligence,
	"Mystika":           shared.AttributeIntelligence,
	"Náboženství":       shared.AttributeIntelligence,
	"Pátrání":           shared.AttributeIntelligence,
	"Lékařství":         shared.AttributeWisdom,
	"Ovládání zvířat":   shared.AttributeWisdom,
	"Přežití":           shared.AttributeWisdom,
	"Vnímání":           shared.AttributeWisdom,
	"Klamání":           shared.AttributeCharisma,
	"Přesvědčování":     shared.AttributeCharisma,
	"Zastrašování":      shared.AttributeCharisma,
}

// SchoolsOfMagic maps school names to short descriptions.
var SchoolsOfMagic = map[string]string{
	"Abjurace":     "Ochranná magie.",
	"Konjurace":    "Vyvolávání předmětů.",
	"Divinace":     "Věštění a odhalování.",
	"Očarování":    "Ovlivňování mysli.",
	"Evokace":      "Uvolňování ničivé energie.",
	"Iluze":        "Klamání smyslů.",
	"Nekromancie":  "Síly života a smrti.",
	"Transmutace":  "Změna fyzické podstaty.",
}
