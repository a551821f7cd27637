package domain

import "time"

// LinkedAccount is a validated bank link. It is created once and never edited.
type LinkedAccount struct {
	BankCode      string    `json:"bank_code"`
	BankName      string    `json:"bank_name"`
	AccountNumber string    `json:"account_number"`
	IFSC          string    `json:"ifsc"`
	BranchName    string    `json:"branch_name"`
	LinkedOn      time.Time `json:"linked_on"`
}

// LinkRequest is the raw form submitted by the user.
type LinkRequest struct {
	BankCode      string
	AccountNumber string
	IFSCSuffix    string
	ConsentGiven  bool
}
