// Package commands defines the vowsync CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - register / login / logout / whoami   Account lifecycle
//   - todo                                 Checklist: list, add, done, due, rm
//   - budget                               Categories, expenses, totals
//   - guests                               Guest list and RSVP counts
//   - details                              Wedding details: show, set
//   - timeline                             Due-date timeline of open tasks
//   - vendors                              Vendor search by category and location
//
// The root command builds the API client, token store, session, and root
// state before any subcommand runs, so handlers share one wired app.
package commands
