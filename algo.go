package passx

// Nth order ClusterBomb over variable-length payload sets.
//
// The vector is grown one variable at a time by recursion, at depth
// Cap()-1 only the last variable is missing and every value of it is
// emitted through the callback. Total emissions are
// len(first_set)*len(second_set)*...*len(nth_set).
func ClusterBomb(payloads *IndexMap, callback func(varMap map[string]interface{}), vector []string) {
	if payloads.Cap() == 0 {
		return
	}

	if len(vector) == payloads.Cap()-1 {
		vectorMap := map[string]interface{}{}
		for k, v := range vector {
			vectorMap[payloads.KeyAtNth(k)] = v
		}
		// only the last variable is missing from the map, iterate its values
		index := len(vector)
		for _, elem := range payloads.GetNth(index) {
			vectorMap[payloads.KeyAtNth(index)] = elem
			callback(vectorMap)
		}
		return
	}

	index := len(vector)
	for _, v := range payloads.GetNth(index) {
		var tmp []string
		if len(vector) > 0 {
			tmp = append(tmp, vector...)
		}
		tmp = append(tmp, v)
		ClusterBomb(payloads, callback, tmp)
	}
}

// IndexMap is a payload map whose keys keep a caller-supplied order so
// that expansion order is reproducible across runs.
type IndexMap struct {
	values map[string][]string
	keys   []string
}

func (o *IndexMap) GetNth(n int) []string {
	return o.values[o.keys[n]]
}

func (o *IndexMap) Cap() int {
	return len(o.keys)
}

// KeyAtNth returns key present at Nth position
func (o *IndexMap) KeyAtNth(n int) string {
	return o.keys[n]
}

// NewIndexMap builds an IndexMap from ordered keys and their payload
// sets. Keys without values are skipped.
func NewIndexMap(keys []string, values map[string][]string) *IndexMap {
	i := &IndexMap{
		values: values,
	}
	for _, k := range keys {
		if len(values[k]) > 0 {
			i.keys = append(i.keys, k)
		}
	}
	return i
}
