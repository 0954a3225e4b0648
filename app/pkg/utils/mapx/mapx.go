package mapx

type BasicMap map[string]interface{}

// CopyNoDuplicates copies src into dst. Keys already present in dst get "_"
// appended until they are free; the original colliding keys are returned.
func CopyNoDuplicates(src BasicMap, dst BasicMap) []string {
	var duplicateKeys []string

	for k, v := range src {
		if _, ok := dst[k]; ok {
			duplicateKeys = append(duplicateKeys, k)
			for ok {
				k += "_"
				_, ok = dst[k]
			}
		}
		dst[k] = v
	}

	return duplicateKeys
}
