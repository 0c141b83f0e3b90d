// Package team manages robotics teams, their members and budgets.
//
// A team is selected by number through the team cookie; the service doubles as the
// resolver used by the current-team middleware.
//
// # HTTP Endpoints
//
//   - GET /teams/lookup?number= : Whether a team number is registered.
//   - POST /teams/login, /teams/logout : Set or clear the team cookie.
//   - POST /teams/register : Create a team (409 when the number is taken).
//   - GET, PUT /teams/current : Read or edit the current team.
//   - GET /teams/current/finances : Budget, inventory value, monthly spend, category breakdown.
//   - POST /teams/current/members, DELETE /teams/current/members/:id : Manage members.
package team
