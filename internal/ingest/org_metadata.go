package ingest

import "regexp"

var (
	orgIDPattern       = regexp.MustCompile(`org_id=(\d+)`)
	orgPhonePattern    = regexp.MustCompile(`org_tel='([^']*)'`)
	orgNamePattern     = regexp.MustCompile(`marka='([^']*)'`)
	orgIndustryPattern = regexp.MustCompile(`sektor='([^']*)'`)
	orgTypePattern     = regexp.MustCompile(`sirket_tipi='([^']*)'`)
)

// OrganizationMetadata is the structured form of the CRM lookup string the
// pipeline attaches to an artifact, e.g.
//
//	org_id=301271899 org_tel='5302392138' marka='NUR TİCARET' sektor='Elektrik' sirket_tipi='Şahıs' ...
//
// Every capture is independent; fields the string lacks stay empty.
type OrganizationMetadata struct {
	ID       string `json:"organization_id"`
	Name     string `json:"organization_name"`
	Type     string `json:"organization_type"`
	Industry string `json:"organization_industry"`
	Phone    string `json:"organization_phone"`
}

func (m OrganizationMetadata) Empty() bool {
	return m == OrganizationMetadata{}
}

func ParseOrganizationMetadata(raw string) OrganizationMetadata {
	return OrganizationMetadata{
		ID:       capture(orgIDPattern, raw),
		Name:     capture(orgNamePattern, raw),
		Type:     capture(orgTypePattern, raw),
		Industry: capture(orgIndustryPattern, raw),
		Phone:    capture(orgPhonePattern, raw),
	}
}

func capture(pattern *regexp.Regexp, raw string) string {
	match := pattern.FindStringSubmatch(raw)
	if match == nil {
		return ""
	}
	return match[1]
}
