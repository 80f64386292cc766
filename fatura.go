// Package fatura extracts structured billing data from the per-page text of
// Brazilian electric utility bill documents. Pages are classified as invoice
// or non-invoice, and invoice pages yield one record with the installation
// (account) number, billing period, energy consumption, total amount due and
// withheld income tax, recovered through ordered pattern-matching chains that
// tolerate the inconsistent layouts the utility prints.
//
// This package contains domain types, interfaces and the extraction logic
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g. pdf/, csv/,
// sqlite/); orchestration lives in process/.
package fatura
