package finprim

// USD is a helper for test to create usd money from a decimal string
func USD(v string) Money { return M(D(v), "USD") }

// NO is a helper for test to create money with no currency set
func NO(v string) Money { return M(D(v), "") }
