package notification

// Field order matches the intake form top to bottom. html/template
// escapes every interpolated value, submitted text must never reach
// the rendered mail unescaped.
const htmlBodyTemplate = `<strong>
Thank you for registering in the New Orleans job system.
</strong>
<p>We are evaluating which opportunity center can best meet your
needs or barriers.
You'll get a reply by email of who to contact.
If you do not have email, someone will call you.</p>
<br>Here are your submissions: </br>
<br>First Name: {{.FirstName}}</br>
<br>Last Name: {{.LastName}}</br>
<br>Best way to contact: {{.BestWay}}</br>
<br>Email: {{.Email}}</br>
<br>Phone: {{.Phone}}</br>
<br>Text: {{.TextNumber}}</br>
<br>Referred by: {{.Referral}}</br>
<br>Which neighborhood:  {{.Neighborhood}}</br>
<br>Are you a young adult? {{.YoungAdult}}</br>
<br>Are you a veteran?  {{.Veteran}}</br>
<br>Do you have little access to transportation?
{{.NoTransportation}}</br>
<br>Are you homeless or staying with someone temporarily?
{{.Homeless}}</br>
<br>I dont have a drivers license. {{.NoDriversLicense}}</br>
<br>I dont have a state-issued I.D. {{.NoStateID}}</br>
<br>I am disabled. {{.Disabled}}</br>
<br>I need childcare. {{.Childcare}}</br>
<br>I have an open criminal charge. {{.Criminal}}</br>
<br>I have been previously incarcerated.
{{.PreviouslyIncarcerated}}</br>
<br>I am using drugs and want to get help. {{.UsingDrugs}}</br>
<br>None of the above. {{.NoneOfAbove}}</br>`
