// Package episode infers episode numbers from media filenames.
//
// Extraction tries an ordered list of rules and returns the first usable
// capture. Later rules are broader and only serve as fallbacks, so the order
// of DefaultRules is part of the contract. Every candidate is discarded when
// the captured digits followed by an uppercase "P" occur anywhere in the name,
// which keeps resolution tags such as "1080P" from being read as episode 08.
package episode
