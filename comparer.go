package main

// Equals reports structural equality. Numbers compare by value, so 2 and
// 2.0 are equal; procedures compare by identity.
func Equals(v1, v2 Value) bool {
	list1, isList1 := v1.(List)
	list2, isList2 := v2.(List)
	if isList1 && isList2 {
		return sliceEquals(list1, list2)
	}

	num1, isNum1 := v1.(Number)
	num2, isNum2 := v2.(Number)
	if isNum1 && isNum2 {
		return num1.Equal(num2.Decimal)
	}

	if isList1 || isList2 || isNum1 || isNum2 {
		return false
	}
	return v1 == v2
}

func sliceEquals(slice1, slice2 List) bool {
	if len(slice1) != len(slice2) {
		return false
	}
	for i := 0; i < len(slice1); i++ {
		if !Equals(slice1[i], slice2[i]) {
			return false
		}
	}
	return true
}
