// Package layout loads declarative keyboard definitions from YAML or
// JSON files and assembles them into keyboard builders.
//
// A definition file holds named keyboards:
//
//	keyboards:
//	  - name: main-menu
//	    kind: inline
//	    rows:
//	      - [{text: Status, data: "menu:status"}]
//	      - [{text: Docs, url: "https://example.com/docs"}]
//	  - name: share
//	    kind: reply
//	    rows:
//	      - ["Cancel", {text: Share contact, request_contact: true}]
//
// A bare string in a row is shorthand for a button with just text. YAML
// input is coerced to JSON so one strict decoder serves both formats;
// unknown fields and trailing data are rejected at load time.
package layout
