// Package model defines the database models for Inkwell.
//
// This package contains GORM models that map to the Inkwell database schema.
//
// # Core Models
//
//   - Folder: tree nodes grouping documents of one kind
//   - Document: leaf records (actors, items, journal entries, scenes, ...)
//   - OwnershipEntry: per-subject ownership levels on documents
//
// # Database Schema
//
// The database uses PostgreSQL with the following tables:
//
//   - folders: the folder tree, one row per folder, parent_id edges
//   - documents: all documents, each belonging to exactly one folder
//   - document_ownership: (document_id, subject_id, level) grants
//
// Folder visibility is not stored anywhere: the host platform derives it
// from the visibility of the documents a folder holds.
package model
