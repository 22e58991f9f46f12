package catalog

import "strings"

// Vendor SKUs encode the product family and the color/finish variant in a
// single string, with the last segment after the final separator naming the
// variant. Different upstream systems disagree on the separator: the variant
// feed uses "-" while parts of the inventory export use "/". All parsing here
// canonicalizes to "-" first so that both spellings of the same SKU resolve
// to the same base SKU.

const skuSeparators = "-/"

// CanonicalSKU returns the SKU with every separator spelled as "-".
func CanonicalSKU(sku string) string {
	return strings.ReplaceAll(strings.TrimSpace(sku), "/", "-")
}

// NormalizedForms returns both separator spellings of a SKU, canonical form
// first. Lookups keyed by SKU must index and probe under both forms so that a
// separator mismatch between systems never causes a false miss.
func NormalizedForms(sku string) []string {
	canonical := CanonicalSKU(sku)
	slashed := strings.ReplaceAll(canonical, "-", "/")
	if slashed == canonical {
		return []string{canonical}
	}
	return []string{canonical, slashed}
}

// ExtractBaseSKU returns the portion of a SKU identifying the product family
// independent of color/finish. A SKU without any separator is its own base
// SKU. Malformed input degrades to the whole trimmed string.
func ExtractBaseSKU(sku string) string {
	canonical := CanonicalSKU(sku)
	idx := strings.LastIndexAny(canonical, skuSeparators)
	if idx <= 0 || idx == len(canonical)-1 {
		return canonical
	}
	return canonical[:idx]
}

// ExtractVariantCode returns the color/finish segment of a SKU, or an empty
// string when the SKU carries no separator.
func ExtractVariantCode(sku string) string {
	canonical := CanonicalSKU(sku)
	idx := strings.LastIndexAny(canonical, skuSeparators)
	if idx <= 0 || idx == len(canonical)-1 {
		return ""
	}
	return canonical[idx+1:]
}
