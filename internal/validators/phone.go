package validators

import "strings"

// NormalizePhone reduz o telefone a dígitos, para que "(69) 99999-9999"
// e "69999999999" casem na busca do cliente.
func NormalizePhone(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
