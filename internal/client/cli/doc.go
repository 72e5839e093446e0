// Package cli is the interactive PointQuest admin console.
//
// Every command that shows or changes data is bound to a console route and
// first navigates there through the route guard. When the guard sends the
// user to the sign-in route, the console asks for credentials and then
// continues to the originally requested route, the same way a browser
// session returns to the page that required a login.
//
// The REPL is started with App.Run, which blocks until "exit" or EOF.
package cli
