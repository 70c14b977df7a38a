package rulebook

import "strings"

// Background is a character background definition from the rule tables.
type Background struct {
	Name               string   `json:"name"`
	SkillProficiencies []string `json:"skillProficiencies"`
	ToolProficiencies  []string `json:"toolProficiencies,omitempty"`
	Languages          int      `json:"languages,omitempty"`
	FeatureName        string   `json:"featureName"`
	FeatureDescription string   `json:"featureDescription"`
	Equipment          []string `json:"equipment"`
	Gold               int      `json:"gold"`
}

var Backgrounds = map[string]*Background{
	"Akolyta": {
		Name:               "Akolyta",
		SkillProficiencies: []string{"Mystika", "Náboženství"},
		Languages:          2,
		FeatureName:        "Úkryt u věřících",
		FeatureDescription: "Můžeš zajistit bezplatné léčení a péči v chrámech tvého božstva.",
		Equipment:          []string{"Svatý symbol", "Modlitební kniha", "Měšec s 15 zl."},
		Gold:               15,
	},
	"Zločinec": {
		Name:               "Zločinec",
		SkillProficiencies: []string{"Čachry", "Nenápadnost"},
		ToolProficiencies:  []string{"Zlodějské náčiní"},
		FeatureName:        "Zločinecké kontakty",
		FeatureDescription: "Máš kontakt na síť zločinců, kteří ti mohou zajistit pomoc.",
		Equipment:          []string{"Páčidlo", "Tmavé oblečení", "Měšec s 15 zl."},
		Gold:               15,
	},
	"Hrdina z lidu": {
		Name:               "Hrdina z lidu",
		SkillProficiencies: []string{"Ovládání zvířat", "Přežití"},
		ToolProficiencies:  []string{"Vozidla"},
		FeatureName:        "Venkovská pohostinnost",
		FeatureDescription: "Obyčejní lidé tě rádi ubytují a skryjí tě před zákonem.",
		Equipment:          []string{"Železný hrnec", "Běžné oblečení", "Měšec s 10 zl."},
		Gold:               10,
	},
	"Šlechtic": {
		Name:               "Šlechtic",
		SkillProficiencies: []string{"Historie", "Přesvědčování"},
		Languages:          1,
		FeatureName:        "Rodová výsada",
		FeatureDescription: "Lidé tě automaticky respektují a máš přístup do vyšší společnosti.",
		Equipment:          []string{"Pečetní prsten", "Jemné oblečení", "Měšec s 25 zl."},
		Gold:               25,
	},
	"Mudrc": {
		Name:               "Mudrc",
		SkillProficiencies: []string{"Historie", "Mystika"},
		Languages:          2,
		FeatureName:        "Výzkumník",
		FeatureDescription: "Když něco nevíš, obvykle víš, kde tu informaci najít.",
		Equipment:          []string{"Láhev inkoustu", "Brk", "Dopis od kolegy", "Měšec s 10 zl."},
		Gold:               10,
	},
	"Voják": {
		Name:               "Voják",
		SkillProficiencies: []string{"Atletika", "Zastrašování"},
		FeatureName:        "Vojenská hodnost",
		FeatureDescription: "Vojáci stejné nebo nižší hodnosti tě respektují a plní tvé rozkazy.",
		Equipment:          []string{"Odznak hodnosti", "Trofej", "Měšec s 10 zl."},
		Gold:               10,
	},
}

// GetBackground resolves a background by name, case-insensitively.
func GetBackground(name string) *Background {
	if bg, ok := Backgrounds[name]; ok {
		return bg
	}
	for key, bg := range Backgrounds {
		if strings.EqualFold(key, name) {
			return bg
		}
	}
	return nil
}
