package pkg

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

type IDMap struct {
	StrToID    map[string]int
	IDToStr    map[int]string
	Vocabulary map[string]bool
	sync.Mutex
}

func NewIDMap() *IDMap {
	return &IDMap{
		StrToID: make(map[string]int),
		IDToStr: make(map[int]string),
	}
}

func (idMap *IDMap) GetID(str string) int {
	idMap.Lock()
	defer idMap.Unlock()
	if id, ok := idMap.StrToID[str]; ok {
		return id
	}

	id := len(idMap.StrToID)
	idMap.StrToID[str] = id
	idMap.IDToStr[id] = str

	return id
}

func (idMap *IDMap) GetStr(id int) string {
	if str, ok := idMap.IDToStr[id]; ok {
		return str
	}
	return ""
}

func (idMap *IDMap) GetSortedTerms() []string {
	sortedTerms := make([]string, 0, len(idMap.StrToID))
	for term := range idMap.StrToID {
		sortedTerms = append(sortedTerms, term)
	}
	sort.Strings(sortedTerms)
	return sortedTerms
}

func (idMap *IDMap) BuildVocabulary() {
	idMap.Vocabulary = make(map[string]bool)
	for term := range idMap.StrToID {
		idMap.Vocabulary[term] = true
	}
}

func (idMap *IDMap) GetVocabulary() map[string]bool {
	return idMap.Vocabulary
}

func (idMap *IDMap) IsInVocabulary(term string) bool {
	_, ok := idMap.Vocabulary[term]
	return ok
}

// error

type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s", e.msg)
	}

	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

var (
	ErrInternalServerError = errors.New("internal Server Error")
	ErrNotFound            = errors.New("your requested Item is not found")
	ErrBadParamInput       = errors.New("given Param is not valid")

	ErrConfiguration           = errors.New("invalid search configuration")
	ErrCollaboratorUnavailable = errors.New("ranking collaborator unavailable")
	ErrDataAccess              = errors.New("corpus data access failed")
)

var MessageInternalServerError string = "internal server error"
