package merge

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genMapping generates two-level mappings over a small key space so that
// operands frequently share keys.
func genMapping() gopter.Gen {
	keys := []string{"a", "b", "c", "d"}
	key := gen.IntRange(0, len(keys)-1).Map(func(i int) string { return keys[i] })
	leaf := gen.AlphaString()

	nested := gen.MapOf(key, leaf).Map(func(m map[string]string) map[string]interface{} {
		out := make(map[string]interface{}, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out
	})

	return gopter.CombineGens(
		gen.MapOf(key, leaf),
		gen.MapOf(key, nested),
	).Map(func(values []interface{}) map[string]interface{} {
		out := map[string]interface{}{}
		for k, v := range values[0].(map[string]string) {
			out[k] = v
		}
		for k, v := range values[1].(map[string]map[string]interface{}) {
			out["n"+k] = v
		}
		return out
	})
}

func TestMergeProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("merge is idempotent", prop.ForAll(
		func(a map[string]interface{}) bool {
			return cmp.Equal(Merge(a, a), a)
		},
		genMapping(),
	))

	properties.Property("all folds left to right", prop.ForAll(
		func(a, b, c map[string]interface{}) bool {
			return cmp.Equal(All(a, b, c), Merge(Merge(a, b), c))
		},
		genMapping(), genMapping(), genMapping(),
	))

	properties.Property("every result key comes from an operand", prop.ForAll(
		func(a, b map[string]interface{}) bool {
			for k := range Merge(a, b) {
				_, inA := a[k]
				_, inB := b[k]
				if !inA && !inB {
					return false
				}
			}
			return true
		},
		genMapping(), genMapping(),
	))

	properties.Property("overlay wins scalar conflicts", prop.ForAll(
		func(a, b map[string]interface{}) bool {
			merged := Merge(a, b)
			for k, bv := range b {
				_, aIsMap := a[k].(map[string]interface{})
				_, bIsMap := bv.(map[string]interface{})
				if aIsMap && bIsMap {
					continue
				}
				if !cmp.Equal(merged[k], bv) {
					return false
				}
			}
			return true
		},
		genMapping(), genMapping(),
	))

	properties.TestingRun(t)
}
