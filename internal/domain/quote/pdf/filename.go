package pdf

import (
	"fmt"
	"strings"
)

// FileName derives the download name from the client name: whitespace runs
// become one underscore and path separators are dropped. Two quotes for the
// same client share a name.
func FileName(clientName string) string {
	name := strings.Join(strings.Fields(clientName), "_")
	name = strings.NewReplacer("/", "", "\\", "", "\"", "").Replace(name)
	return "quote_" + name + ".pdf"
}

// ContentDisposition returns an attachment header for the quote of
// clientName with an ASCII filename and the UTF-8 filename* form.
func ContentDisposition(clientName string) string {
	name := FileName(clientName)
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, asciiName(name), encodeExtValue(name))
}

func asciiName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < 0x20 || r > 0x7e {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// encodeExtValue percent-encodes every byte outside the attr-char set.
func encodeExtValue(s string) string {
	const upperhex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAttrChar(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}

func isAttrChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("!#$&+-.^_`|~", c) >= 0
}
