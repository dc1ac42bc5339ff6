// Package edenweb turns the Sacred Texts Archive scan of The Forgotten
// Books of Eden into a modern static website. It classifies the archive's
// page files into logical books, extracts clean titled content fragments
// from each page, and renders an index page plus per-book reading pages
// with shared assets.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, template/).
package edenweb
