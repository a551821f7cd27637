package domain

import "strings"

// Bank is a catalog entry. Entries are built once at startup and never change.
type Bank struct {
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	IFSCPrefix string   `json:"ifsc_prefix"`
	Branches   []string `json:"branches"`
	Image      string   `json:"image"`
}

func (b Bank) clone() Bank {
	b.Branches = append([]string(nil), b.Branches...)
	return b
}

// Catalog is the static registry of banks a user can link.
type Catalog struct {
	banks  []Bank
	byCode map[string]int
}

func NewCatalog(banks ...Bank) *Catalog {
	c := &Catalog{byCode: make(map[string]int, len(banks))}
	for _, b := range banks {
		code := strings.ToUpper(strings.TrimSpace(b.Code))
		if _, dup := c.byCode[code]; dup || code == "" {
			continue
		}
		b.Code = code
		c.byCode[code] = len(c.banks)
		c.banks = append(c.banks, b.clone())
	}
	return c
}

// Lookup finds a bank by code, ignoring case and surrounding spaces.
func (c *Catalog) Lookup(code string) (Bank, bool) {
	i, ok := c.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Bank{}, false
	}
	return c.banks[i].clone(), true
}

// List returns the banks in display order.
func (c *Catalog) List() []Bank {
	out := make([]Bank, 0, len(c.banks))
	for _, b := range c.banks {
		out = append(out, b.clone())
	}
	return out
}

func DefaultCatalog() *Catalog {
	return NewCatalog(
		Bank{Code: "SBI", Name: "State Bank of India", IFSCPrefix: "SBIN", Image: "/static/images/sbi.png",
			Branches: []string{"MainBranch", "EastBranch", "WestBranch"}},
		Bank{Code: "HDFC", Name: "HDFC Bank", IFSCPrefix: "HDFC", Image: "/static/images/hdfc.png",
			Branches: []string{"Fort Mumbai", "Connaught Place", "Koramangala", "Banjara Hills"}},
		Bank{Code: "ICICI", Name: "ICICI Bank", IFSCPrefix: "ICIC", Image: "/static/images/icici.png",
			Branches: []string{"Bandra Kurla", "Salt Lake", "Anna Nagar"}},
		Bank{Code: "AXIS", Name: "Axis Bank", IFSCPrefix: "UTIB", Image: "/static/images/axis.png",
			Branches: []string{"Ellis Bridge", "Worli", "Jayanagar", "Civil Lines"}},
		Bank{Code: "KOTAK", Name: "Kotak Mahindra Bank", IFSCPrefix: "KKBK", Image: "/static/images/kotak.png",
			Branches: []string{"Nariman Point", "Indiranagar", "Aundh"}},
		Bank{Code: "PAYTM", Name: "Paytm Payments Bank", IFSCPrefix: "PYTM", Image: "/static/images/paytm.png",
			Branches: []string{"Noida Sector 5"}},
		Bank{Code: "PNB", Name: "Punjab National Bank", IFSCPrefix: "PUNB", Image: "/static/images/pnb.png",
			Branches: []string{"Karol Bagh", "Model Town", "Hazratganj", "Sector 17 Chandigarh"}},
		Bank{Code: "UNION", Name: "Union Bank of India", IFSCPrefix: "UBIN", Image: "/static/images/union.png",
			Branches: []string{"Nariman Point", "Vashi", "Mylapore"}},
		Bank{Code: "BOB", Name: "Bank of Baroda", IFSCPrefix: "BARB", Image: "/static/images/bob.png",
			Branches: []string{"Mandvi Vadodara", "Alkapuri", "Andheri East"}},
		Bank{Code: "CAN", Name: "Canara Bank", IFSCPrefix: "CNRB", Image: "/static/images/canara.png",
			Branches: []string{"JC Road", "Malleshwaram", "T Nagar"}},
		Bank{Code: "YES", Name: "Yes Bank", IFSCPrefix: "YESB", Image: "/static/images/yes.png",
			Branches: []string{"Lower Parel", "Gurgaon Sector 44"}},
		Bank{Code: "IDFC", Name: "IDFC First Bank", IFSCPrefix: "IDFB", Image: "/static/images/idfc.png",
			Branches: []string{"BKC Mumbai", "Whitefield", "Baner", "Gachibowli", "Powai"}},
	)
}
