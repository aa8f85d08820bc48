/*
Package tvm implements time-value-of-money formulas on exact decimals,
matching the semantics of the spreadsheet financial functions.

# Sign convention

Every formula comes in two flavours:

  - the internal flavour (for instance [FVInternal]) follows the strict
    cash-flow convention: amounts keep their algebraic sign all along and the
    result is the literal balance of the position. Paying 100 per period
    into an account yields a negative future value.
  - the spreadsheet flavour (for instance [FV]) negates the internal result.
    Money paid out is entered as a negative number and the function returns
    the value received in exchange, usually positive.

The two flavours always differ by exactly one sign flip. Other formulas
compose the internal flavour and apply their own flip.

# Options

Optional arguments are carried by [Options]. Its zero value selects the
defaults: a present value of 0 and payments at the end of each period
(ordinary annuity). Set [Options.Due] for payments at the beginning of each
period (annuity due).

# Precision

Values are [decimal.Decimal] from github.com/shopspring/decimal.
Addition, subtraction and multiplication are exact. Division rounds to
[decimal.DivisionPrecision] digits after the decimal point. The compounding
factor (1+rate)^nper is rounded to [PowPrecision] digits after the decimal
point, for integer and fractional nper alike; fractional exponents go
through a natural logarithm and an exponential series. Results therefore
carry a bounded number of fractional digits, however large nper is.

# Errors

Functions do not validate their inputs. Callers are responsible for
financially sensible values: a rate strictly greater than -1, and at least
one of the payment or the present value not zero. Out of domain inputs
reach the power primitive unchanged and its error, if any, is returned as
is:

  - 0 raised to 0 (rate = -1 and nper = 0),
  - 0 raised to a negative number of periods (rate = -1, nper < 0),
  - a negative base raised to a fractional number of periods (rate < -1).
*/
package tvm
