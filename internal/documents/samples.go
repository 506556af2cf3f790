// Package documents carries the built-in sample estate documents used by the
// demo CLI and integration tests. Content is plain text; no parsing happens
// anywhere in the pipeline.
package documents

import (
	"github.com/avasilev/estate-doc-agent/internal/models"
)

var validDeathCertificate = models.Document{
	DocumentID: "DC001",
	Content: `STATE OF NEW YORK
DEPARTMENT OF HEALTH
CERTIFICATE OF DEATH
Certificate Number: 2023-NY-00012345

1. Full Name of Deceased: Johnathan Edward Doe
2. Date of Death: January 1, 2023
3. Place of Death: New York-Presbyterian Hospital, New York, NY
4. Sex: Male
5. Age at Death: 76 years
6. Date of Birth: March 5, 1946
7. Usual Residence: 789 Elm Street, Albany, NY 12207
8. Marital Status: Married
9. Name of Spouse: Margaret Anne Doe
10. Informant Name: Michael Doe
11. Relationship to Deceased: Son
12. Cause of Death: Acute Myocardial Infarction
13. Certifying Physician: Dr. Linda Park, M.D.
14. Date Signed: January 2, 2023

Filed with the New York Department of Health
Date Received: January 3, 2023
Registrar: Helen T. Vaughn`,
	Metadata: map[string]any{
		"source":        "New York Department of Health",
		"document_type": "official",
		"received_date": "2023-01-03",
	},
}

// Missing both "certificate of death" and "date of death"; classifies as a
// death certificate but fails validation.
var invalidDeathCertificate = models.Document{
	DocumentID: "DC002",
	Content: `STATE OF CALIFORNIA
VITAL RECORDS OFFICE
DEATH RECORD
Record Number: 2023-CA-00067890

1. Full Name of Deceased: Sarah Michelle Johnson
2. Deceased Date: February 15, 2023
3. Location of Death: Cedars-Sinai Medical Center, Los Angeles, CA
4. Gender: Female
5. Age at Death: 82 years
6. Birth Date: June 12, 1940
7. Home Address: 456 Oak Avenue, Los Angeles, CA 90210
8. Marital Status: Widowed
9. Next of Kin: Robert Johnson (Son)
10. Cause of Death: Natural Causes
11. Attending Physician: Dr. James Wilson, M.D.
12. Date Certified: February 16, 2023

Filed with the California Vital Records Office
Processing Date: February 17, 2023
Clerk: Maria Rodriguez`,
	Metadata: map[string]any{
		"source":        "California Vital Records Office",
		"document_type": "official",
		"received_date": "2023-02-17",
	},
}

var validWill = models.Document{
	DocumentID: "WT001",
	Content: `LAST WILL AND TESTAMENT
OF
ROBERT JAMES SMITH

I, Robert James Smith, of 123 Main Street, Boston, Massachusetts, being of sound mind
and disposing memory, do hereby make, publish, and declare this to be my Last Will
and Testament, hereby revoking all former wills and codicils by me made.

FIRST: I direct that all my just debts and funeral expenses be paid as soon as
practicable after my death.

SECOND: I give, devise, and bequeath all of my property, both real and personal,
of every kind and description, and wherever situated, to my beloved wife,
Mary Elizabeth Smith, if she survives me.

THIRD: If my said wife does not survive me, then I give, devise, and bequeath
all of my property to my children, John Smith and Jane Smith, in equal shares.

FOURTH: I hereby nominate and appoint my wife, Mary Elizabeth Smith, as the
Executor of this my Last Will and Testament.

IN WITNESS WHEREOF, I have hereunto set my hand this 15th day of March, 2023.

Robert James Smith, Testator`,
	Metadata: map[string]any{
		"source":         "Estate Attorney Office",
		"document_type":  "legal",
		"execution_date": "2023-03-15",
	},
}

var validTrust = models.Document{
	DocumentID: "WT002",
	Content: `THE JOHNSON FAMILY REVOCABLE LIVING TRUST AGREEMENT

This Trust Agreement is made this 10th day of April, 2023, between
William Johnson and Patricia Johnson, husband and wife (the "Settlors"),
and William Johnson and Patricia Johnson, as Trustees (the "Trustees").

ARTICLE I - CREATION OF TRUST
The Settlors hereby transfer and assign to the Trustees the property
described in Schedule A attached hereto and incorporated herein by reference,
to be held, administered, and distributed in accordance with the terms
of this Trust Agreement.

ARTICLE II - TRUST PURPOSES
This trust is created for the benefit of the Settlors during their lifetimes,
and thereafter for the benefit of their descendants and such other persons
as may be designated as beneficiaries under this Trust Agreement.

ARTICLE III - SUCCESSOR TRUSTEES
Upon the death or incapacity of both original Trustees, their son,
Michael Johnson, shall serve as successor Trustee.

IN WITNESS WHEREOF, the parties have executed this Trust Agreement
on the date first written above.`,
	Metadata: map[string]any{
		"source":         "Trust Attorney Office",
		"document_type":  "legal",
		"execution_date": "2023-04-10",
	},
}

// Contains neither "last will and testament" nor "trust agreement"; classifies
// as Will or Trust through secondary keywords and fails validation.
var invalidWill = models.Document{
	DocumentID: "WT003",
	Content: `ESTATE PLANNING DOCUMENT
OF
MARGARET ANNE WILSON

I, Margaret Anne Wilson, of 789 Elm Street, Chicago, Illinois, being of sound mind,
do hereby make this estate planning document to distribute my assets upon my death.

FIRST: I direct that all my debts and expenses be paid from my estate.

SECOND: I leave all my real estate property located at 789 Elm Street, Chicago,
Illinois, to my daughter, Susan Wilson, as beneficiary.

THIRD: I leave all my personal property, including bank accounts, investments,
and personal belongings, to be divided equally between my children,
Susan Wilson and David Wilson.

FOURTH: I appoint my daughter, Susan Wilson, as the executor of my estate.

This document represents my final wishes regarding the distribution of my assets.

Signed this 20th day of May, 2023.`,
	Metadata: map[string]any{
		"source":         "Self-prepared document",
		"document_type":  "informal",
		"execution_date": "2023-05-20",
	},
}

// Bypass category: classifies as Financial Statement, no validation rule.
var financialStatement = models.Document{
	DocumentID: "FS001",
	Content: `FIRST NATIONAL BANK
ACCOUNT STATEMENT

Account Holder: Thomas Anderson
Account Number: ****-****-****-1234
Statement Period: January 1, 2023 - January 31, 2023

ACCOUNT SUMMARY
Beginning Balance (01/01/2023): $45,678.90
Total Deposits: $8,500.00
Total Withdrawals: $3,200.45
Ending Balance (01/31/2023): $50,978.45

TRANSACTION DETAILS
01/03/2023  Direct Deposit - Salary           +$4,250.00
01/10/2023  Check #1234 - Mortgage Payment    -$1,850.00
01/15/2023  Direct Deposit - Salary           +$4,250.00
01/18/2023  Online Transfer - Savings         -$500.00
01/25/2023  Utility Payment                   -$275.00

ACCOUNT INFORMATION
Account Type: Checking Account
Interest Rate: 0.05% APY
Monthly Service Fee: $0.00 (waived with minimum account balance)`,
	Metadata: map[string]any{
		"source":         "First National Bank",
		"document_type":  "financial",
		"statement_date": "2023-01-31",
	},
}

// Bypass category: classifies as Property Deed, no validation rule.
var propertyDeed = models.Document{
	DocumentID: "PD001",
	Content: `WARRANTY DEED

KNOW ALL MEN BY THESE PRESENTS, that John Michael Davis and Mary Elizabeth Davis,
husband and wife, of Cook County, Illinois (the "Grantors"), for and in consideration
of the sum of Three Hundred Fifty Thousand Dollars ($350,000.00) and other good and
valuable consideration, do hereby grant, bargain, sell, and convey unto
Robert William Thompson and Linda Susan Thompson, husband and wife, of Cook County,
Illinois (the "Grantees"), the following described real estate situated in
Cook County, Illinois:

LEGAL DESCRIPTION:
Lot 15 in Block 3 of Oakwood Subdivision, being a subdivision of part of the
Southeast Quarter of Section 12, Township 39 North, Range 13 East of the
Third Principal Meridian.

Commonly known as: 456 Maple Avenue, Oak Park, Illinois 60302

TO HAVE AND TO HOLD the same, together with all and singular the appurtenances
thereunto belonging, unto the said Grantees, their heirs and assigns forever.

IN WITNESS WHEREOF, the said Grantors have hereunto set their hands and seals
this 25th day of June, 2023.`,
	Metadata: map[string]any{
		"source":         "Cook County Recorder's Office",
		"document_type":  "legal",
		"recording_date": "2023-06-25",
	},
}

var samples = []models.Document{
	validDeathCertificate,
	invalidDeathCertificate,
	validWill,
	validTrust,
	invalidWill,
	financialStatement,
	propertyDeed,
}

// All returns a copy of the built-in sample documents.
func All() []models.Document {
	docs := make([]models.Document, len(samples))
	copy(docs, samples)
	return docs
}

// ByID returns the sample document with the given identifier.
func ByID(documentID string) (models.Document, bool) {
	for _, doc := range samples {
		if doc.DocumentID == documentID {
			return doc, true
		}
	}
	return models.Document{}, false
}
