package services

// FieldKeys is the fixed, ordered list of questionnaire fields exported to
// CSV. The order matches the questionnaire form on the public site.
var FieldKeys = []string{
	"nom_prenom",
	"tranche_age",
	"telephone",
	"email",
	"securite_general",
	"securite_remarques",
	"sante_professionnels",
	"sante_remarques",
	"impots_fonciers_info",
	"impots_remarques",
	"jeunesse_services",
	"jeunesse_remarques",
	"actions_sociales",
	"social_remarques",
	"attractivite",
	"attractivite_remarques",
	"loisirs_offre",
	"loisirs_remarques",
	"evenements_suffisants",
	"evenements_idees",
	"cae_impact",
	"cae_remarques",
	"representation",
	"representation_remarques",
	"idees_pour_chantraine",
}

// FieldLabels maps field keys to the human-readable CSV column labels.
var FieldLabels = map[string]string{
	"nom_prenom":               "Nom / Prénom",
	"tranche_age":              "Tranche d'âge",
	"telephone":                "Téléphone",
	"email":                    "Email",
	"securite_general":         "Sécurité - Général",
	"securite_remarques":       "Sécurité - Remarques",
	"sante_professionnels":     "Santé - Professionnels",
	"sante_remarques":          "Santé - Remarques",
	"impots_fonciers_info":     "Impôts fonciers - Info",
	"impots_remarques":         "Impôts - Remarques",
	"jeunesse_services":        "Jeunesse - Services",
	"jeunesse_remarques":       "Jeunesse - Remarques",
	"actions_sociales":         "Actions sociales",
	"social_remarques":         "Actions sociales - Remarques",
	"attractivite":             "Attractivité",
	"attractivite_remarques":   "Attractivité - Remarques",
	"loisirs_offre":            "Loisirs - Offre",
	"loisirs_remarques":        "Loisirs - Remarques",
	"evenements_suffisants":    "Événements - Suffisants",
	"evenements_idees":         "Événements - Idées",
	"cae_impact":               "CAE - Impact",
	"cae_remarques":            "CAE - Remarques",
	"representation":           "Représentation",
	"representation_remarques": "Représentation - Remarques",
	"idees_pour_chantraine":    "Idées pour Chantraine",
}

// FieldLabel returns the column label for key, falling back to the key
// itself for anything unlabeled.
func FieldLabel(key string) string {
	if l := FieldLabels[key]; l != "" {
		return l
	}
	return key
}
