/*
Package format is the document mutation layer of the formatting core.

It answers "is format F active at selection S" and performs "toggle format F at
selection S" against any ports.Substrate. It never builds or stores selections;
it receives one per call and returns the one the substrate hands back.

Toggling a block always runs unwrap, then set, then wrap, so a block is never
transiently held by two conflicting list containers and switching from a
numbered to a bulleted list passes through a plain list item.
*/
package format
