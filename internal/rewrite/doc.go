// Package rewrite contains the regex passes that nudge JavaScript source toward
// the jsstyle conventions: single quotes, a space between certain keywords and
// "(", and `if (...) return|throw` one-liners split over two lines.
//
// Назначение: упорядоченный набор чистых преобразований текста целиком.
// Не делает: лексического разбора, валидации, IO.
// Зависимости: только regexp.
package rewrite
