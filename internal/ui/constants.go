// Package ui provides shared UI constants and utilities.
package ui

// ScrollMargin is the number of items to keep visible above/below the cursor.
const ScrollMargin = 5
