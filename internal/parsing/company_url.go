// Package parsing - company_url.go infers a company name from a job URL.
package parsing

import (
	"net/url"
	"strings"
)

// subdomains that carry no company information
var careerSubdomains = map[string]bool{
	"careers": true,
	"career":  true,
	"jobs":    true,
	"job":     true,
	"work":    true,
	"apply":   true,
	"www":     true,
}

// CompanyFromURL extracts a best-effort company name from a job page URL.
// LinkedIn company pages carry the name in the path; most corporate career
// sites carry it in the domain. Returns "Unknown Company" when nothing
// usable is found.
func CompanyFromURL(rawURL string) string {
	if rawURL == "" {
		return "Unknown Company"
	}

	parsed, err := url.Parse(strings.ToLower(rawURL))
	if err != nil || parsed.Host == "" {
		return "Unknown Company"
	}

	host := strings.TrimPrefix(parsed.Hostname(), "www.")

	switch {
	case strings.Contains(host, "linkedin.com"):
		if name := linkedInCompanyFromPath(parsed.Path); name != "" {
			return name
		}
		return "Unknown Company"
	case strings.Contains(host, "indeed.com"):
		return "Unknown Company"
	default:
		return companyFromDomain(host)
	}
}

// linkedInCompanyFromPath pulls the company slug out of a
// /company/<name>/... path segment.
func linkedInCompanyFromPath(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, part := range parts {
		if part == "company" && i+1 < len(parts) {
			return titleCase(strings.ReplaceAll(parts[i+1], "-", " "))
		}
	}
	return ""
}

// companyFromDomain takes the registrable label of a host, skipping
// career-site subdomains (e.g. careers.example.com yields Example).
func companyFromDomain(host string) string {
	parts := strings.Split(host, ".")
	if len(parts) < 2 {
		return "Unknown Company"
	}

	label := parts[len(parts)-2]
	if careerSubdomains[label] && len(parts) >= 3 {
		label = parts[len(parts)-3]
	}
	if label == "" {
		return "Unknown Company"
	}

	return titleCase(strings.ReplaceAll(label, "-", " "))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
