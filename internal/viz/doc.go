// Package viz renders the live items into the terminal. It is the
// presentation collaborator of the engine: it interprets item payloads into
// labels, projects item positions through an orbiting camera onto a
// depth-buffered cell canvas, and drives the stage clock from a bubbletea
// frame tick. Formation switches are triggered from here but executed
// entirely by the stage.
package viz
