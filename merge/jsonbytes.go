package merge

import (
	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatchJSON applies an RFC 7396 merge patch to a raw JSON document.
// It exists for callers holding wire-format bytes; its semantics are the
// RFC's (object upsert, null deletes, arrays replaced wholesale), not
// those of Merge with a Config.
func MergePatchJSON(doc, patch []byte) ([]byte, error) {
	return jsonpatch.MergePatch(doc, patch)
}
