/*
Package mathematics is a small library of immutable numeric value types:

  - numeric/epsilon: magnitude-relative approximate equality of floats and ULP distances.
  - numeric/interval: intervals of the real line with open or closed endpoints.
  - algebra/linear: affine functions f(x) = a*x + b.

Every type is a plain value: operations never mutate their receiver and are
safe for concurrent use.
*/
package mathematics
