package scanner

import "github.com/beevik/etree"

const (
	userInfoTag = "userInfo"
	entryTag    = "entry"
)

// UserInfo collects the key/value entries of the first userInfo block under
// el. A missing block yields an empty map. Later duplicate keys overwrite
// earlier ones.
func UserInfo(el *etree.Element) map[string]string {
	info := make(map[string]string)
	block := el.SelectElement(userInfoTag)
	if block == nil {
		return info
	}
	for _, entry := range block.SelectElements(entryTag) {
		info[entry.SelectAttrValue("key", "")] = entry.SelectAttrValue("value", "")
	}
	return info
}
