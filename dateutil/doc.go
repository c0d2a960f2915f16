// Package dateutil implements the date arithmetic behind a calendar widget:
// day comparisons, month page grids with leading and trailing fill days,
// week paging and the marking format used to key calendar cells.
//
// Every helper takes an [adapter.Adapter] explicitly. Helpers never return
// errors and never panic on bad input; invalid or absent dates degrade to
// false, nil or the empty string.
package dateutil
