// Package result implementa o contêiner soma Ok/Err usado por todas as
// operações públicas do engine de estimativa no lugar de panics.
package result

import (
	"fmt"
	"reflect"
)

// Result carrega exatamente um de: valor de sucesso ou erro.
// O valor zero não é um Result válido; use Ok ou Err.
type Result[T any, E error] struct {
	ok    bool
	value T
	err   E
}

// Ok constrói um Result de sucesso.
func Ok[T any, E error](value T) Result[T, E] {
	return Result[T, E]{ok: true, value: value}
}

// Err constrói um Result de falha.
func Err[T any, E error](err E) Result[T, E] {
	return Result[T, E]{ok: false, err: err}
}

// IsOk reporta se o Result carrega um valor de sucesso.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reporta se o Result carrega um erro.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Unwrap retorna o valor de sucesso. Chamar Unwrap em um Err é violação
// de contrato do chamador e gera panic com a descrição do erro embrulhado.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(fmt.Sprintf("result: Unwrap chamado em Err: %v", r.err))
	}
	return r.value
}

// UnwrapErr retorna o erro. Chamar UnwrapErr em um Ok gera panic.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(fmt.Sprintf("result: UnwrapErr chamado em Ok: %v", r.value))
	}
	return r.err
}

// UnwrapOr retorna o valor de sucesso, ou def quando o Result é Err.
// Nunca falha.
func (r Result[T, E]) UnwrapOr(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

// Equal reporta igualdade: ambos Ok com payloads iguais, ou ambos Err
// com erros iguais. Payloads são comparados com reflect.DeepEqual.
func (r Result[T, E]) Equal(other Result[T, E]) bool {
	if r.ok != other.ok {
		return false
	}
	if r.ok {
		return reflect.DeepEqual(r.value, other.value)
	}
	return reflect.DeepEqual(r.err, other.err)
}

// Map aplica f ao valor de sucesso, deixando um Err intocado.
// (Função de pacote porque métodos Go não introduzem type parameters.)
func Map[T, U any, E error](r Result[T, E], f func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.err)
	}
	return Ok[U, E](f(r.value))
}

// AndThen encadeia uma operação dependente que também pode falhar.
// Em um Err, f nunca é invocada e o erro propaga inalterado.
func AndThen[T, U any, E error](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.err)
	}
	return f(r.value)
}

// MapErr aplica f ao erro, deixando um Ok intocado.
func MapErr[T any, E, F error](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T, F](f(r.err))
}

// OrElse encadeia uma recuperação dependente do erro. Em um Ok, f nunca
// é invocada.
func OrElse[T any, E, F error](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return f(r.err)
}
