// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vaultschema

import (
	"encoding/json"
	"strings"
	"time"
)

const isoSeconds = "2006-01-02T15:04:05"

// legacyLayouts are the java.text.DateFormat medium date-time layouts older
// Android clients wrote before dates were switched to ISO-8601.
var legacyLayouts = []string{
	"Jan 2, 2006 3:04:05 PM",
	"Jan 2, 2006, 3:04:05 PM",
}

// formatDate renders t as ISO-8601 UTC at millisecond precision. A zero
// millisecond part is still written (".00Z") because peer parsers reject
// timestamps without one.
func formatDate(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond()/int(time.Millisecond) == 0 {
		return t.Format(isoSeconds) + ".00Z"
	}
	return t.Format(isoSeconds + ".000Z")
}

// parseDate accepts ISO-8601, then the legacy layouts (read as UTC), and
// falls back to the epoch.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC().Truncate(time.Millisecond)
	}
	legacy := strings.ReplaceAll(s, "\u202f", " ")
	for _, layout := range legacyLayouts {
		if t, err := time.ParseInLocation(layout, legacy, time.UTC); err == nil {
			return t
		}
	}
	return time.UnixMilli(0).UTC()
}

// wireDate is a time.Time with the blob date encoding.
type wireDate time.Time

func (d wireDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(formatDate(time.Time(d)))
}

func (d *wireDate) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		// numbers and other shapes are treated like an unparseable string
		s = ""
	}
	*d = wireDate(parseDate(s))
	return nil
}

func toWireDate(t time.Time) wireDate { return wireDate(t) }

func fromWireDate(d wireDate) time.Time { return time.Time(d) }

func toWireDatePtr(t *time.Time) *wireDate {
	if t == nil {
		return nil
	}
	d := wireDate(*t)
	return &d
}

func fromWireDatePtr(d *wireDate) *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d)
	return &t
}
