package discord

import (
	"errors"
	"strconv"
	"strings"
)

// Operaciones que viajan en el custom_id de cada botón.
const (
	opNavigate = "nav"
	opSelect   = "sel"
	opShow     = "show"
	opDelete   = "del"
)

// Separador del token `op;param;owner`. Los snowflakes de Discord y los ids
// del store son numéricos, así que nunca lo contienen.
const customIDSep = ";"

var errInvalidCustomID = errors.New("custom_id inválido")

// pageState viaja entero dentro del custom_id: no hay sesión del lado del
// server, cada click trae todo lo que hace falta para re-renderizar.
// param es el offset para nav, o un game id para sel/show/del.
type pageState struct {
	Op    string
	Param string
	Owner string
}

func (p pageState) encode() string {
	return p.Op + customIDSep + p.Param + customIDSep + p.Owner
}

func navState(offset int, owner string) pageState {
	return pageState{Op: opNavigate, Param: strconv.Itoa(offset), Owner: owner}
}

func gameState(op string, gameID int64, owner string) pageState {
	return pageState{Op: op, Param: strconv.FormatInt(gameID, 10), Owner: owner}
}

func decodeCustomID(raw string) (pageState, error) {
	parts := strings.SplitN(raw, customIDSep, 3)
	if len(parts) < 3 {
		return pageState{}, errInvalidCustomID
	}
	return pageState{Op: parts[0], Param: parts[1], Owner: parts[2]}, nil
}

func (p pageState) offset() (int, error) {
	n, err := strconv.Atoi(p.Param)
	if err != nil || n < 0 {
		return 0, errInvalidCustomID
	}
	return n, nil
}

func (p pageState) gameID() (int64, error) {
	n, err := strconv.ParseInt(p.Param, 10, 64)
	if err != nil || n < 0 {
		return 0, errInvalidCustomID
	}
	return n, nil
}
