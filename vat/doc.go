// Package vat holds the EU VAT rate table and the arithmetic for adding VAT to
// a net amount or removing it from a gross amount.
//
// All functions are pure and safe for concurrent use: the table is package
// data that is never mutated, and accessors hand out copies.
package vat
