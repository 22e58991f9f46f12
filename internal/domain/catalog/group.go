package catalog

import "sort"

// availabilityBoost lifts every in-stock group above every out-of-stock
// group in the listing order, regardless of raw stock counts.
const availabilityBoost = 1000

// ColorVariant is the display-only projection of one group member
type ColorVariant struct {
	ColorCode string `json:"color_code"`
	ColorName string `json:"color_name"`
	HexColor  string `json:"hex_color"`
	SKU       string `json:"sku"`
}

// ProductGroup is the deduplicated, stock-aggregated unit returned by the
// catalog engine: all color variants sharing a base SKU, represented by a
// single canonical variant.
type ProductGroup struct {
	BaseSKU         string
	Canonical       VariantRecord
	DisplayName     string
	AggregatedStock int
	Available       bool
	ColorVariants   []ColorVariant
	MemberSKUs      []string
	SortPriority    int
}

// StockFunc resolves the merged stock total for a single variant SKU
type StockFunc func(sku string) int

// BuildGroups partitions variant records by base SKU and aggregates each
// partition into a ProductGroup. Malformed records are skipped. The result
// is ordered by base SKU; callers apply their own listing order afterwards.
//
// Availability is computed as the OR of per-member stock flags rather than
// from the aggregated sum, so the flag stays correct if negative stock
// adjustments ever appear upstream.
func BuildGroups(variants []VariantRecord, stockOf StockFunc) []ProductGroup {
	partitions := make(map[string][]VariantRecord)
	for _, v := range variants {
		if !v.IsWellFormed() {
			continue
		}
		base := v.BaseSKU()
		partitions[base] = append(partitions[base], v)
	}

	groups := make([]ProductGroup, 0, len(partitions))
	for base, members := range partitions {
		groups = append(groups, buildGroup(base, members, stockOf))
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].BaseSKU < groups[j].BaseSKU
	})
	return groups
}

func buildGroup(base string, members []VariantRecord, stockOf StockFunc) ProductGroup {
	group := ProductGroup{
		BaseSKU:    base,
		MemberSKUs: make([]string, 0, len(members)),
	}

	canonical := members[0]
	canonicalStock := stockOf(canonical.SKU)

	for i, member := range members {
		stock := stockOf(member.SKU)
		group.AggregatedStock += stock
		if stock > 0 {
			group.Available = true
		}
		group.MemberSKUs = append(group.MemberSKUs, member.SKU)

		if i > 0 && preferCanonical(member, stock, canonical, canonicalStock) {
			canonical = member
			canonicalStock = stock
		}
	}

	group.Canonical = canonical
	group.DisplayName = CleanName(canonical.Name)
	if group.Available {
		group.SortPriority = group.AggregatedStock + availabilityBoost
	}

	if len(members) > 1 {
		group.ColorVariants = make([]ColorVariant, 0, len(members))
		for _, member := range members {
			color := member.Color()
			group.ColorVariants = append(group.ColorVariants, ColorVariant{
				ColorCode: member.VariantCode(),
				ColorName: color.Name,
				HexColor:  color.Hex,
				SKU:       member.SKU,
			})
		}
		sort.Slice(group.ColorVariants, func(i, j int) bool {
			return group.ColorVariants[i].SKU < group.ColorVariants[j].SKU
		})
	}

	sort.Strings(group.MemberSKUs)
	return group
}

// preferCanonical is the strict total order for canonical selection: higher
// stock wins, then the shorter display name (less likely to carry a leftover
// color suffix), then the lexicographically smaller name, then the smaller
// SKU. The final SKU tiebreak keeps the order total for members with
// identical names, so selection never depends on input ordering.
func preferCanonical(candidate VariantRecord, candidateStock int, current VariantRecord, currentStock int) bool {
	if candidateStock != currentStock {
		return candidateStock > currentStock
	}
	if len(candidate.Name) != len(current.Name) {
		return len(candidate.Name) < len(current.Name)
	}
	if candidate.Name != current.Name {
		return candidate.Name < current.Name
	}
	return candidate.SKU < current.SKU
}
