package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Login != "/accounts/login/" {
		t.Fatalf("Login = %q", Login)
	}
	if Logout != "/accounts/logout/" {
		t.Fatalf("Logout = %q", Logout)
	}
	if Profile != "/accounts/profile/" {
		t.Fatalf("Profile = %q", Profile)
	}
	if Contact != "/contact/" {
		t.Fatalf("Contact = %q", Contact)
	}
	if JSMTServices != "/js/mt-services/" {
		t.Fatalf("JSMTServices = %q", JSMTServices)
	}
}

func TestLoginWithNext(t *testing.T) {
	t.Parallel()

	if got := LoginWithNext(""); got != Login {
		t.Fatalf("LoginWithNext(\"\") = %q", got)
	}
	if got := LoginWithNext("/"); got != Login {
		t.Fatalf("LoginWithNext(/) = %q", got)
	}
	if got := LoginWithNext("/accounts/profile/?tab=1"); got != "/accounts/login/?next=%2Faccounts%2Fprofile%2F%3Ftab%3D1" {
		t.Fatalf("LoginWithNext() = %q", got)
	}
}

func TestUnitRouteBuilders(t *testing.T) {
	t.Parallel()

	if got := Translate("weblate", "master", "cs"); got != "/translate/weblate/master/cs/" {
		t.Fatalf("Translate() = %q", got)
	}
	if got := TranslateUnit("weblate", "master", "cs", "abc"); got != "/translate/weblate/master/cs/?checksum=abc" {
		t.Fatalf("TranslateUnit() = %q", got)
	}
	if got := JSDetail("weblate", "master", "abc"); got != "/js/detail/weblate/master/abc/" {
		t.Fatalf("JSDetail() = %q", got)
	}
	if got := JSTranslate(42); got != "/js/translate/42/" {
		t.Fatalf("JSTranslate() = %q", got)
	}
	if got := JSTranslateAll(42); got != "/js/translate-all/42/" {
		t.Fatalf("JSTranslateAll() = %q", got)
	}
	if got := JSUnitChanges(7); got != "/js/changes/7/" {
		t.Fatalf("JSUnitChanges() = %q", got)
	}
	if got := JSUnitTranslations(7); got != "/js/translations/7/" {
		t.Fatalf("JSUnitTranslations() = %q", got)
	}
}

func TestRouteBuildersEscapeSegments(t *testing.T) {
	t.Parallel()

	if got := Translate(" a b ", "x/y", "pt_BR"); got != "/translate/a%20b/x%2Fy/pt_BR/" {
		t.Fatalf("Translate() = %q", got)
	}
}

func TestChangesWithFilter(t *testing.T) {
	t.Parallel()

	if got := ChangesWithFilter(ChangesFilter{}); got != Changes {
		t.Fatalf("empty filter = %q", got)
	}
	if got := ChangesWithFilter(ChangesFilter{Page: 1}); got != Changes {
		t.Fatalf("first page = %q", got)
	}
	got := ChangesWithFilter(ChangesFilter{Project: "weblate", Subproject: "master", Language: "cs", Checksum: "abc", Page: 3})
	want := "/changes/?checksum=abc&language=cs&page=3&project=weblate&subproject=master"
	if got != want {
		t.Fatalf("ChangesWithFilter() = %q, want %q", got, want)
	}
}
