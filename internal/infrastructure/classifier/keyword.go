package classifier

import (
	"strings"

	"github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/domain/catalog"
)

// Category slugs produced by the keyword classifier. Slugs are stable and
// ASCII so they can be used directly as filter values in query strings.
const (
	CategoryWallets    = "penezenky"
	CategoryBackpacks  = "batohy"
	CategoryBags       = "tasky"
	CategoryBriefcases = "aktovky"
	CategoryLuggage    = "kufry"
	CategoryAccessory  = "doplnky"
	CategoryOther      = "ostatni"
)

// keywordRule maps name substrings to a category slug. Earlier rules win, so
// more specific phrases must precede general ones.
type keywordRule struct {
	category string
	keywords []string
}

var rules = []keywordRule{
	{CategoryWallets, []string{"peněženka", "penezenka", "dokladovka", "pouzdro na karty"}},
	{CategoryBackpacks, []string{"batoh", "ruksak"}},
	{CategoryBriefcases, []string{"aktovka", "brašna na notebook", "brasna na notebook"}},
	{CategoryLuggage, []string{"kufr", "trolley", "cestovní taška", "cestovni taska"}},
	{CategoryBags, []string{"taška", "taska", "kabelka", "crossbody", "brašna", "brasna"}},
	{CategoryAccessory, []string{"klíčenka", "klicenka", "pásek", "pasek", "deštník", "destnik", "pouzdro"}},
}

// KeywordClassifier assigns a product to a category by matching Czech
// keywords in its display name.
type KeywordClassifier struct{}

// NewKeywordClassifier creates a new keyword classifier
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

// Classify returns the category slug for a display name. Names with no
// recognized keyword fall into the catch-all category.
func (c *KeywordClassifier) Classify(displayName string) string {
	name := strings.ToLower(displayName)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.category
			}
		}
	}
	return CategoryOther
}

// Ensure KeywordClassifier implements Classifier
var _ catalog.Classifier = (*KeywordClassifier)(nil)
