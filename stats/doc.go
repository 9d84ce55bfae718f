// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package stats resolves share-stat ids to their preview metadata.

# Registry

The stats are authored in stats.yaml and compiled into the binary:

	reg, err := stats.Embedded()

Load validates the document: at least one stat, unique ids, unique order
values, and a default id that exists. Unknown fields are rejected.

# Lookup

	stat := reg.Resolve("69-percent") // known id
	stat := reg.Resolve("typo")       // default record, never an error
	all := reg.ListAll()              // sorted by the order field

Resolve never fails because its output feeds public preview cards; a wrong
preview for a mistyped id is preferable to a broken one.

# Sharing

	links := stats.ShareLinks(stat, siteURL) // twitter, facebook, linkedin, email, url
	meta := reg.Metadata(stat, siteURL)      // Open Graph + Twitter card fields

Every share URL lands human visitors on the petition (PetitionPath),
whatever stat it names.
*/
package stats
