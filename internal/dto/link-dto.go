package dto

type SelectBankRequest struct {
	BankCode string `json:"bank_code" validate:"required"`
}

type SuffixInputRequest struct {
	IFSCSuffix string `json:"ifsc_suffix"`
}

// SuffixSuggestion is what the form shows while the suffix is typed.
type SuffixSuggestion struct {
	Suffix string `json:"suffix"`
	IFSC   string `json:"ifsc"`
	Branch string `json:"branch"`
}

type SubmitLinkRequest struct {
	AccountNumber string `json:"account_number"`
	IFSCSuffix    string `json:"ifsc_suffix"`
	ConsentGiven  bool   `json:"consent_given"`
}

type ConsentResponse struct {
	Granted bool `json:"granted"`
}
