// Package ui is the department dashboard built on Bubble Tea.
//
// Core pieces:
//   - View: a screen or modal with its own init, update and view (Elm-style)
//   - OverlayStack: modals stacked over the screen; the top one receives keys
//   - DepartmentScreen: table, pager, banners, form and delete confirmation
//   - KeyHandler: single keys and SPC-prefixed sequences mapped to messages
//
// The screen reads application state through DepartmentStore and changes it
// only by dispatching; remote results come back as store actions.
package ui
