package domain

// ValidateCedula checks an Ecuadorian cédula (national identity number).
// A cédula is exactly 10 digits; the first 9 carry the holder's data and
// the 10th is a mod-10 weighted check digit: each of the first 9 digits is
// multiplied by the alternating coefficient 2,1,2,1,..., products of 10 or
// more have 9 subtracted, and the check digit is (10 - sum mod 10) mod 10.
//
// Returns ErrCedulaFormat if the string is not 10 digits, ErrCedulaChecksum
// if the check digit does not match, nil otherwise.
func ValidateCedula(cedula string) error {
	if len(cedula) != 10 {
		return ErrCedulaFormat
	}
	for i := 0; i < len(cedula); i++ {
		if cedula[i] < '0' || cedula[i] > '9' {
			return ErrCedulaFormat
		}
	}

	sum := 0
	for i := 0; i < 9; i++ {
		v := int(cedula[i] - '0')
		if i%2 == 0 {
			v *= 2
			if v >= 10 {
				v -= 9
			}
		}
		sum += v
	}

	check := (10 - sum%10) % 10
	if check != int(cedula[9]-'0') {
		return ErrCedulaChecksum
	}
	return nil
}
