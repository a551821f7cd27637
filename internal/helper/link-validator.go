package helper

import (
	"regexp"
	"strings"
	"time"

	"github.com/Gayatri-ch/UniPay/internal/domain"
)

var (
	accountNumberRe = regexp.MustCompile(`^\d{6,20}$`)
	ifscSuffixRe    = regexp.MustCompile(`^[A-Z0-9]{7}$`)
)

// ValidateLink checks a link request and builds the account to persist.
// Checks run in order: account number, IFSC suffix, consent. branch is the
// suggestion the user last saw; it is stored as is.
func ValidateLink(bank domain.Bank, req domain.LinkRequest, branch string, now time.Time) (domain.LinkedAccount, error) {
	account := strings.TrimSpace(req.AccountNumber)
	if !accountNumberRe.MatchString(account) {
		return domain.LinkedAccount{}, domain.ErrInvalidAccountNumber
	}

	suffix := NormalizeSuffix(req.IFSCSuffix)
	if !ifscSuffixRe.MatchString(suffix) {
		return domain.LinkedAccount{}, domain.ErrInvalidIfscSuffix
	}

	if !req.ConsentGiven {
		return domain.LinkedAccount{}, domain.ErrConsentRequired
	}

	return domain.LinkedAccount{
		BankCode:      bank.Code,
		BankName:      bank.Name,
		AccountNumber: account,
		IFSC:          bank.IFSCPrefix + suffix,
		BranchName:    branch,
		LinkedOn:      now,
	}, nil
}
