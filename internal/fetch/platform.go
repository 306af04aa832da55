// Package fetch - platform.go provides job board detection and board-specific
// selectors.
package fetch

import (
	"net/url"
	"regexp"
	"strings"
)

// Platform represents a known job board platform.
type Platform string

const (
	// PlatformLinkedIn is the LinkedIn jobs platform
	PlatformLinkedIn Platform = "linkedin"
	// PlatformGreenhouse is the Greenhouse ATS platform
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformLever is the Lever ATS platform
	PlatformLever Platform = "lever"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the job board platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	if strings.Contains(host, "linkedin.com") {
		return PlatformLinkedIn
	}

	if strings.Contains(host, "greenhouse.io") {
		return PlatformGreenhouse
	}

	if strings.Contains(host, "lever.co") {
		return PlatformLever
	}

	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors optimized for a specific
// platform.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformLinkedIn:
		return []string{
			"#job-details",                       // Logged-in job view
			".description__text",                 // Public job view
			".show-more-less-html__markup",       // Expanded description
			".jobs-description-content__text",    // Feed-embedded view
			".jobs-box__html-content",            // Fallback container
			"main",
		}
	case PlatformGreenhouse:
		return []string{
			".job__description.body",
			".job__description",
			".job-description__content",
			"#content",
			".job-post-container",
		}
	case PlatformLever:
		return []string{
			".posting-page",
			".section-wrapper.page-full-width",
			".posting-description",
			".content",
		}
	default:
		return JobPostingSelectors()
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a specific
// platform.
func PlatformNoiseSelectors(platform Platform) []string {
	common := []string{
		// Application forms
		"form",
		"#application-form",
		".application-form",
		".apply-button-container",

		// EEO and legal
		".voluntary-disclosure",
		".eeo-statement",
		".legal-disclosure",

		// Social and share buttons
		".social-share",
		".share-buttons",

		// Cookie and GDPR
		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",
	}

	switch platform {
	case PlatformLinkedIn:
		return append(common,
			".similar-jobs",
			".jobs-similar-jobs",
			".people-also-viewed",
			".job-alert-redirect-section",
			".sign-in-modal",
			".top-card-layout__cta-container",
		)
	case PlatformGreenhouse:
		return append(common,
			".application--wrapper",
			".voluntary-self-id",
			".post-apply",
		)
	case PlatformLever:
		return append(common,
			".apply-section",
			".lever-application-form",
			".posting-apply",
		)
	default:
		return common
	}
}

var linkedInJobID = regexp.MustCompile(`(?:view|jobs)/(\d+)`)

// JobID extracts a numeric job identifier from a posting URL, or "" when the
// URL carries none. Used for cache keys and mock data.
func JobID(urlStr string) string {
	if m := linkedInJobID.FindStringSubmatch(urlStr); m != nil {
		return m[1]
	}
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	if id := parsed.Query().Get("currentJobId"); id != "" {
		return id
	}
	return ""
}
