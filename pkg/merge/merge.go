// Package merge deep-merges template data mappings.
//
// For a key present in both operands, nested mappings are merged recursively
// and every other value, sequences included, is replaced by the overlay's.
// Neither operand is modified and the result never aliases a mapping or
// sequence owned by an operand.
package merge

import (
	"github.com/mitchellh/copystructure"
)

// Merge returns base overlaid with overlay
func Merge(base, overlay map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(base)+len(overlay))

	for k, v := range base {
		if _, shadowed := overlay[k]; !shadowed {
			out[k] = clone(v)
		}
	}

	for k, ov := range overlay {
		bv, inBase := base[k]
		if inBase {
			bm, baseIsMap := bv.(map[string]interface{})
			om, overlayIsMap := ov.(map[string]interface{})
			if baseIsMap && overlayIsMap {
				out[k] = Merge(bm, om)
				continue
			}
		}
		out[k] = clone(ov)
	}

	return out
}

// All merges mappings left to right starting from an empty mapping, so
// All(a, b, c) equals Merge(Merge(Merge({}, a), b), c).
func All(mappings ...map[string]interface{}) map[string]interface{} {
	result := map[string]interface{}{}
	for _, m := range mappings {
		result = Merge(result, m)
	}
	return result
}

// clone deep-copies mutable containers; scalars are returned as is
func clone(v interface{}) interface{} {
	switch v.(type) {
	case map[string]interface{}, []interface{}:
		return copystructure.Must(copystructure.Copy(v))
	default:
		return v
	}
}
