// Package versions turns raw release records into the printed version list.
// Format keeps stable releases and orders their parsed tags newest first;
// Group then caps how many entries each major version contributes.
package versions
