// Package game owns the simulation context and the frame loop that ties the
// vehicle model, dashboard, key table and audio together
package game
