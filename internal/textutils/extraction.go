package textutils

import (
	"regexp"
	"strings"
)

// AccountNumberPattern is the digit grouping of a domestic account number
// as it appears in the source sheets: 26 digits in groups of
// 2-4-4-4-4-4-4 separated by single spaces.
const AccountNumberPattern = `\d{2} \d{4} \d{4} \d{4} \d{4} \d{4} \d{4}`

// reimbursementRe captures the employee name (non-greedy) and the grouped
// account number from a reimbursement instruction.
var reimbursementRe = regexp.MustCompile(`(?i)reimbursement to the employee (.+?)\s+(` + AccountNumberPattern + `)`)

// Reimbursement holds the payee and account extracted from a reimbursement
// instruction found in an account field.
type Reimbursement struct {
	Payee   string
	Account string
}

// ExtractReimbursement checks whether an account field carries a
// reimbursement instruction and pulls the employee name and account number
// out of it. The field triggers only when, lowercased, it starts with one
// of the given prefixes. A trigger without a full pattern match is not an
// error: the caller keeps the field as-is.
func ExtractReimbursement(field string, prefixes []string) (Reimbursement, bool) {
	lowered := strings.ToLower(field)
	triggered := false
	for _, prefix := range prefixes {
		if strings.HasPrefix(lowered, prefix) {
			triggered = true
			break
		}
	}
	if !triggered {
		return Reimbursement{}, false
	}

	matches := reimbursementRe.FindStringSubmatch(field)
	if len(matches) < 3 {
		return Reimbursement{}, false
	}

	return Reimbursement{
		Payee:   strings.TrimSpace(matches[1]),
		Account: StripSpaces(matches[2]),
	}, true
}
