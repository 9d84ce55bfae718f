// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"net/url"
	"strings"
)

// Preview image size expected by Open Graph consumers
const (
	ImageWidth  = 1200
	ImageHeight = 630
)

// PetitionPath is where every share link lands a human visitor
const PetitionPath = "/#sign"

// Links are ready-to-use share intents for one stat
type Links struct {
	Twitter  string `json:"twitter"`
	Facebook string `json:"facebook"`
	LinkedIn string `json:"linkedin"`
	Email    string `json:"email"`
	URL      string `json:"url"`
}

// PageMeta holds what crawlers read from a share page
type PageMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	SiteName    string `json:"site_name"`
	Image       string `json:"image"`
	ImageWidth  int    `json:"image_width"`
	ImageHeight int    `json:"image_height"`
	ImageAlt    string `json:"image_alt"`
	Locale      string `json:"locale"`
	Type        string `json:"type"`
	TwitterCard string `json:"twitter_card"`
	RedirectTo  string `json:"redirect_to"`
}

// ShareURL is the per-stat landing URL that carries the stat's preview
func ShareURL(stat ShareStat, siteURL string) string {
	return strings.TrimRight(siteURL, "/") + "/share/" + url.PathEscape(stat.ID)
}

// ImageURL makes a site-relative preview image absolute
func ImageURL(stat ShareStat, siteURL string) string {
	if strings.HasPrefix(stat.OGImage, "/") {
		return strings.TrimRight(siteURL, "/") + stat.OGImage
	}
	return stat.OGImage
}

func ShareLinks(stat ShareStat, siteURL string) Links {
	shareURL := ShareURL(stat, siteURL)
	encodedURL := encodeComponent(shareURL)
	encodedText := encodeComponent(stat.ShareText)
	encodedTitle := encodeComponent(stat.OGTitle)

	return Links{
		Twitter:  "https://twitter.com/intent/tweet?text=" + encodedText + "&url=" + encodedURL,
		Facebook: "https://www.facebook.com/sharer/sharer.php?u=" + encodedURL,
		LinkedIn: "https://www.linkedin.com/sharing/share-offsite/?url=" + encodedURL,
		Email:    "mailto:?subject=" + encodedTitle + "&body=" + encodedText + "%20" + encodedURL,
		URL:      shareURL,
	}
}

// Metadata builds the Open Graph and Twitter card fields for stat
func (r *Registry) Metadata(stat ShareStat, siteURL string) PageMeta {
	return PageMeta{
		Title:       stat.OGTitle,
		Description: stat.OGDescription,
		URL:         ShareURL(stat, siteURL),
		SiteName:    r.siteName,
		Image:       ImageURL(stat, siteURL),
		ImageWidth:  ImageWidth,
		ImageHeight: ImageHeight,
		ImageAlt:    stat.OGTitle,
		Locale:      "en_US",
		Type:        "website",
		TwitterCard: "summary_large_image",
		RedirectTo:  PetitionPath,
	}
}

// encodeComponent escapes s for use inside a query value or mailto field.
// Spaces become %20 rather than + because mail clients don't decode +.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
