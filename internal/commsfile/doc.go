// Package commsfile parses the project INI that describes a comms session:
// type profiles, meta aliases, speakers, acronyms, waypoint groups, render
// options, and the ordered [comms] transcript itself.
//
// The [comms] section deliberately allows repeated keys and preserves source
// order, and [waypoints.*] sections hold freeform tokens rather than
// key=value pairs, so the file is read line by line instead of through a
// generic INI library. Supplemental waypoint and acronym libraries can be
// merged in from YAML files shared across projects.
package commsfile
